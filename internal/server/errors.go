package server

import "fmt"

// BindError сервер не смог занять порт (порт занят, нет прав, неверный номер).
// Ошибка не фатальна: приложение продолжает работу без синхронизации.
type BindError struct {
	Err  error
	Port int
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind sync server to port %d: %v", e.Port, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
