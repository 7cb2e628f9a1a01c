package api

import "errors"

// ErrUnauthorized возвращается клиентом, когда сервер отклонил PIN (HTTP 401)
var ErrUnauthorized = errors.New("unauthorized: missing or invalid sync PIN")

// ErrRateLimited возвращается клиентом при ответе HTTP 429
var ErrRateLimited = errors.New("rate limited by sync server")
