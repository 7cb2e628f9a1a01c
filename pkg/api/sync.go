package api

import "encoding/json"

// PinHeader заголовок, в котором компаньон передает PIN сервера синхронизации
const PinHeader = "X-Sync-Pin"

// ProtocolVersion версия протокола синхронизации, возвращается в /api/sync/status
const ProtocolVersion = 1

// Пути эндпоинтов синхронизации
const (
	PathStatus   = "/api/sync/status"
	PathManifest = "/api/sync/manifest"
	PathPull     = "/api/sync/pull"
	PathPush     = "/api/sync/push"
)

// Типы записей в манифесте
const (
	TypeConversation = "conversation"
	TypeProject      = "project"
)

// StatusResponse представляет ответ GET /api/sync/status.
// Эндпоинт не требует PIN: раскрываются только счетчики и факт наличия PIN.
type StatusResponse struct {
	ServerName        string `json:"serverName"`
	Version           int    `json:"version"`
	ConversationCount int    `json:"conversationCount"`
	ProjectCount      int    `json:"projectCount"`
	HasPin            bool   `json:"hasPin"`
}

// ManifestEntry краткое описание одной записи для дешевого сравнения реплик
type ManifestEntry struct {
	ID           string `json:"id"`
	UpdatedAt    string `json:"updatedAt"`
	Type         string `json:"type"` // "conversation" или "project"
	MessageCount int    `json:"messageCount"`
}

// KnownItem запись, которая уже есть у клиента, с известным ему updatedAt
type KnownItem struct {
	ID        string `json:"id"`
	UpdatedAt string `json:"updatedAt"`
}

// PullRequest запрос POST /api/sync/pull
type PullRequest struct {
	KnownItems []KnownItem `json:"knownItems"`
}

// PullResponse содержит полные записи, которых у клиента нет или которые у него устарели
type PullResponse struct {
	Conversations []json.RawMessage `json:"conversations"`
	Projects      []json.RawMessage `json:"projects"`
}

// PushRequest запрос POST /api/sync/push с записями, созданными на стороне клиента
type PushRequest struct {
	Conversations []json.RawMessage `json:"conversations"`
	Projects      []json.RawMessage `json:"projects"`
}

// PushResponse подтверждает получение записей.
// Счетчики равны длинам полученных массивов и не гарантируют, что слияние уже произошло.
type PushResponse struct {
	MergedConversations int `json:"mergedConversations"`
	MergedProjects      int `json:"mergedProjects"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
