package routes

import (
	"avflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEquipments = "/equipments"
	PathClients    = "/clients"
	PathBudgets    = "/budgets"
)

func addRentalRoutes(
	rg *gin.RouterGroup,
	equipmentHandler *handlers.EquipmentHandler,
	clientHandler *handlers.ClientHandler,
	budgetHandler *handlers.BudgetHandler,
	reportHandler *handlers.ReportHandler,
) {
	equipments := rg.Group(PathEquipments)
	{
		equipments.GET("", equipmentHandler.ListEquipments)
		equipments.POST("", equipmentHandler.CreateEquipment)
		equipments.DELETE("/:id", equipmentHandler.DeleteEquipment)
		equipments.GET("/:id/availability", equipmentHandler.GetAvailability)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.PATCH("/:id/status", budgetHandler.SetBudgetStatus)
	}

	rg.GET("/dashboard", reportHandler.GetDashboard)
	rg.GET("/agenda", reportHandler.GetAgenda)
}
