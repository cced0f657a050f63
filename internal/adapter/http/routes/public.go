package routes

import (
	"beautytag/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPublic = "/public"
	PathIntake = "/intake"
	PathAuth   = "/auth"
)

func addPublicRoutes(rg *gin.RouterGroup, formHandler *handlers.FormHandler, intakeHandler *handlers.IntakeHandler, authHandler *handlers.AuthHandler) {
	public := rg.Group(PathPublic)
	{
		// Formulário de cadastro exposto pelo link público.
		public.GET("/formularios/:id", formHandler.GetPublicForm)
	}

	intake := public.Group(PathIntake)
	{
		intake.POST("", intakeHandler.StartSession)
		intake.GET("/:id", intakeHandler.GetSession)
		intake.POST("/:id/advance", intakeHandler.Advance)
		intake.POST("/:id/back", intakeHandler.Back)
		intake.PUT("/:id/consent", intakeHandler.AcceptTerms)
		intake.PUT("/:id/personal-info", intakeHandler.SubmitPersonalInfo)
		intake.PUT("/:id/selection", intakeHandler.SelectService)
		intake.PUT("/:id/frequency", intakeHandler.SetFrequency)
		intake.DELETE("/:id/selection/:option_id", intakeHandler.RemoveSelection)
		intake.POST("/:id/submit", intakeHandler.Submit)
	}

	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}
