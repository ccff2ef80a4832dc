package routes

import (
	"billed_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBills = "/bills"
)

func addBillRoutes(rg *gin.RouterGroup, billHandler *handlers.BillHandler) {
	bills := rg.Group(PathBills)
	bills.Use(handlers.RequireEmployeeSession())
	{
		bills.GET("", billHandler.ListBills)
		bills.GET("/:id", billHandler.GetBill)
		// Two-phase submission: file upload first, form completion second.
		bills.POST("/files", billHandler.UploadBillFile)
		bills.POST("", billHandler.CreateBill)
	}
}
