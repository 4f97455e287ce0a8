package identity

// Identity аутентифицированная личность из внешнего auth-провайдера.
// Ядру нужны только факт аутентификации и непрозрачный идентификатор
// для связи сессии с её записью.
type Identity struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}

// ErrorResponse модель ошибки от провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
