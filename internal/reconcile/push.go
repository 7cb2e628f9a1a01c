package reconcile

import "github.com/iudanet/lansync/pkg/api"

// Acknowledge формирует ответ на push.
// Сервер не сливает записи сам: payload передается владеющему приложению,
// а счетчики лишь подтверждают получение и не означают, что данные сохранены.
func Acknowledge(req api.PushRequest) api.PushResponse {
	return api.PushResponse{
		MergedConversations: len(req.Conversations),
		MergedProjects:      len(req.Projects),
	}
}
