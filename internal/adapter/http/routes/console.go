package routes

import (
	"beautytag/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices      = "/servicos"
	PathForms         = "/formularios"
	PathPlans         = "/planos"
	PathCheckins      = "/checkins"
	PathNotifications = "/notifications"
	PathUsers         = "/users"
)

func addConsoleRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	serviceHandler *handlers.ServiceHandler,
	formHandler *handlers.FormHandler,
	planHandler *handlers.PlanHandler,
	checkinHandler *handlers.CheckinHandler,
	notificationHandler *handlers.NotificationHandler,
	userHandler *handlers.UserHandler,
) {
	console := rg.Group("", authHandler.RequireSession())

	console.POST(PathAuth+"/logout", authHandler.Logout)

	services := console.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	forms := console.Group(PathForms)
	{
		forms.POST("", formHandler.CreateForm)
		forms.GET("", formHandler.ListForms)
		forms.GET("/:id", formHandler.GetForm)
		forms.PUT("/:id", formHandler.UpdateForm)
		forms.DELETE("/:id", formHandler.DeleteForm)
		forms.POST("/:id/options", formHandler.AddOption)
		forms.PUT("/:id/options/:option_id", formHandler.UpdateOption)
		forms.DELETE("/:id/options/:option_id", formHandler.RemoveOption)
	}

	plans := console.Group(PathPlans)
	{
		plans.POST("", planHandler.CreatePlan)
		plans.GET("/:id", planHandler.GetPlan)
		plans.GET("/users/:user_id", planHandler.GetPlanByUser)
		plans.POST("/:id/pay", planHandler.PayPlan)
		plans.POST("/:id/services", planHandler.AddPlanService)
		plans.PUT("/:id/services/:line_id", planHandler.UpdatePlanService)
		plans.DELETE("/:id/services/:line_id", planHandler.RemovePlanService)
		plans.DELETE("/:id", planHandler.DeletePlan)
	}

	checkins := console.Group(PathCheckins)
	{
		checkins.POST("", checkinHandler.CreateCheckin)
		checkins.GET("", checkinHandler.ListCheckins)
		checkins.GET("/:id", checkinHandler.GetCheckin)
		checkins.GET("/hash/:hash", checkinHandler.GetCheckinByHash)
		checkins.PUT("/:id", checkinHandler.UpdateCheckin)
		checkins.DELETE("/:id", checkinHandler.DeleteCheckin)
	}

	notifications := console.Group(PathNotifications)
	{
		notifications.POST("", notificationHandler.CreateNotification)
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.GET("/:id", notificationHandler.GetNotification)
		notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
		notifications.POST("/:id/approve", notificationHandler.ApproveNotification)
		notifications.DELETE("/:id", notificationHandler.DeleteNotification)
	}

	users := console.Group(PathUsers)
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.PUT("/:id", userHandler.UpdateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id/block", userHandler.BlockUser)
		users.PATCH("/:id/unblock", userHandler.UnblockUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}
}
