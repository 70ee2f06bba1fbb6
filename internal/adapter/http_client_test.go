package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmachado/go-auth-api/models"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestRegister_Roundtrip(t *testing.T) {
	var gotPayload models.RegisterRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Msg: "Usuário criado com sucesso!"})
	}))
	defer srv.Close()

	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	err := client.Register(context.Background(), models.RegisterRequest{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", gotPayload.Email)
	assert.Equal(t, "secret1", gotPayload.ConfirmPassword)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.MessageResponse{Msg: "Por favor, utilize outro e-mail."})
	}))
	defer srv.Close()

	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	err := client.Register(context.Background(), models.RegisterRequest{Name: "Ana"})
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "Por favor, utilize outro e-mail.")
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			Msg:   "Autenticação realizada com sucesso.",
			Token: "signed.jwt.token",
		})
	}))
	defer srv.Close()

	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	token, err := client.Login(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
	assert.Equal(t, "signed.jwt.token", client.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.MessageResponse{Msg: "Senha Inválida."})
	}))
	defer srv.Close()

	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	_, err := client.Login(context.Background(), "ana@example.com", "wrong")
	require.ErrorIs(t, err, ErrRejected)
	assert.Empty(t, client.Token())
}

func TestLogin_UnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Msg: "Usuário não encontrado."})
	}))
	defer srv.Close()

	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	_, err := client.Login(context.Background(), "missing@example.com", "secret1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUser_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/user-1", r.URL.Path)
		require.Equal(t, "Bearer signed.jwt.token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.UserResponse{
			User: models.User{ID: "user-1", Name: "Ana", Email: "ana@example.com"},
		})
	}))
	defer srv.Close()

	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})
	client.SetToken("signed.jwt.token")

	user, err := client.GetUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestGetUser_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		msg    string
		want   error
	}{
		{"no credential", http.StatusUnauthorized, "Acesso Negado.", ErrAccessDenied},
		{"bad token", http.StatusBadRequest, "Token Inválido", ErrInvalidToken},
		{"unknown profile", http.StatusNotFound, "Usuário não encontrado!", ErrNotFound},
		{"server fault", http.StatusInternalServerError, "Aconteceu um erro no servidor. Tente novamente.", ErrServerFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.MessageResponse{Msg: tt.msg})
			}))
			defer srv.Close()

			client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

			_, err := client.GetUser(context.Background(), "user-1")
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestMapHTTPError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	_, err := client.GetUser(context.Background(), "user-1")
	require.ErrorIs(t, err, ErrServerFault)
	assert.Contains(t, err.Error(), "status 502")
}

func TestSetToken_Trimmed(t *testing.T) {
	client := NewHTTPAPIClient(HTTPClientConfig{})
	client.SetToken("  signed.jwt.token \n")
	assert.Equal(t, "signed.jwt.token", client.Token())
}

func TestLogin_EmptyTokenInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Msg: "Autenticação realizada com sucesso."})
	}))
	defer srv.Close()

	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL})

	_, err := client.Login(context.Background(), "ana@example.com", "secret1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRejected))
}
