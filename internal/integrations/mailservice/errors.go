package mailservice

import "errors"

var (
	// ErrSendFailed возвращается, когда почтовый сервис отклонил или не принял письмо
	ErrSendFailed = errors.New("mailservice: failed to send email")

	// ErrInternal возвращается при ошибках построения запроса
	ErrInternal = errors.New("mailservice: internal error")
)
