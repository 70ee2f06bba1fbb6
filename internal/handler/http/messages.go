package http

// Client-facing response messages. The API predates this implementation and
// its contract is Portuguese; the exact strings are load-bearing for
// existing clients and must not be reworded.
const (
	msgAppRunning      = "Aplicação rodando!"
	msgMissingName     = "O nome é obrigatório!"
	msgMissingEmail    = "O email é obrigatório!"
	msgMissingPassword = "A senha é obrigatória!"
	msgPasswordsDiffer = "As senhas não conferem!"
	msgEmailTaken      = "Por favor, utilize outro e-mail."
	msgUserCreated     = "Usuário criado com sucesso!"
	msgRegisterFailed  = "Erro ao tentar conectar servidor!"
	msgUserNotFound    = "Usuário não encontrado."
	msgWrongPassword   = "Senha Inválida."
	msgLoginOK         = "Autenticação realizada com sucesso."
	msgServerError     = "Aconteceu um erro no servidor. Tente novamente."
	msgAccessDenied    = "Acesso Negado."
	msgInvalidToken    = "Token Inválido"
	msgProfileNotFound = "Usuário não encontrado!"
)
