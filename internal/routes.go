package internal

import (
	"gritd/internal/controllers"
	"gritd/internal/providers"
	"net/http"
)

func InitRoutes(api *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/logs", http.HandlerFunc(api.GetLogs))
	routers.Get("/logs/recent", http.HandlerFunc(api.GetRecentLogs))
	routers.Post("/logs", http.HandlerFunc(api.CreateLog))
	routers.Get("/logs/{id}", http.HandlerFunc(api.GetLog))
	routers.Put("/logs/{id}", http.HandlerFunc(api.UpdateLog))
	routers.Delete("/logs/{id}", http.HandlerFunc(api.DeleteLog))

	routers.Get("/reviews", http.HandlerFunc(api.GetReviews))
	routers.Post("/reviews", http.HandlerFunc(api.SaveReview))
	routers.Get("/reviews/week/{weekStart}", http.HandlerFunc(api.GetWeekReview))
	routers.Get("/reviews/{id}", http.HandlerFunc(api.GetReviewDetails))

	routers.Get("/rewards", http.HandlerFunc(api.GetRewards))
	routers.Get("/rewards/next", http.HandlerFunc(api.GetNextReward))
	routers.Post("/rewards", http.HandlerFunc(api.CreateReward))
	routers.Post("/rewards/check", http.HandlerFunc(api.CheckRewards))
	routers.Put("/rewards/{id}", http.HandlerFunc(api.UpdateReward))
	routers.Delete("/rewards/{id}", http.HandlerFunc(api.DeleteReward))
	routers.Post("/rewards/{id}/complete", http.HandlerFunc(api.CompleteReward))
	routers.Post("/rewards/{id}/uncomplete", http.HandlerFunc(api.UncompleteReward))

	routers.Get("/stats/summary", http.HandlerFunc(api.GetSummary))
	routers.Get("/stats/trend", http.HandlerFunc(api.GetTrend))
	routers.Get("/stats/weekly/{weekStart}", http.HandlerFunc(api.GetWeeklyStats))
	routers.Get("/stats/monthly/{month}", http.HandlerFunc(api.GetMonthlyStats))
	routers.Get("/stats/cache", http.HandlerFunc(api.GetStatsCache))

	routers.Get("/view", http.HandlerFunc(api.GetView))
	routers.Put("/view", http.HandlerFunc(api.SetView))

	routers.Get("/export", http.HandlerFunc(api.Export))
	routers.Post("/import", http.HandlerFunc(api.Import))
	routers.Post("/reset", http.HandlerFunc(api.Reset))
	routers.Post("/storage/clear", http.HandlerFunc(api.ClearStorage))
	routers.Get("/archives", http.HandlerFunc(api.GetArchives))
	routers.Post("/archives/{name}/restore", http.HandlerFunc(api.RestoreArchive))
	return routers
}
