package routes

import (
	"banksampah/controllers/admin"
	"banksampah/controllers/auth"
	"banksampah/controllers/nasabah"
	"banksampah/controllers/petugas"
	"banksampah/middlewares"
	"banksampah/models"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/login", auth.Login)

	authed := app.Group("/auth", middlewares.SessionAuth)
	authed.Post("/logout", auth.Logout)
	authed.Post("/change-pin", auth.ChangePin)

	adminroutes := app.Group("/admin", middlewares.SessionAuth, middlewares.RequireRole(models.RoleAdmin))
	adminroutes.Post("/units", admin.CreateUnit)
	adminroutes.Get("/units", admin.ListUnits)
	adminroutes.Post("/units/:id/deactivate", admin.DeactivateUnit)
	adminroutes.Post("/catalog", admin.CreateCatalogItem)
	adminroutes.Get("/catalog", admin.ListCatalog)
	adminroutes.Put("/catalog/:id", admin.UpdateCatalogItem)
	adminroutes.Post("/catalog/:id/deactivate", admin.DeactivateCatalogItem)
	adminroutes.Post("/accounts", admin.CreateStaff)
	adminroutes.Post("/accounts/:id/reset-pin", admin.ResetPin)
	adminroutes.Post("/accounts/:id/unblock", admin.Unblock)
	adminroutes.Post("/accounts/:id/deactivate", admin.Deactivate)
	adminroutes.Get("/transactions", admin.ListTransactions)
	adminroutes.Get("/summary", admin.Summary)

	petugasroutes := app.Group("/petugas", middlewares.SessionAuth, middlewares.RequireRole(models.RolePetugas))
	petugasroutes.Post("/nasabah", petugas.CreateNasabah)
	petugasroutes.Post("/nasabah/:id/reset-pin", petugas.ResetNasabahPin)
	petugasroutes.Post("/nasabah/:id/unblock", petugas.UnblockNasabah)
	petugasroutes.Post("/deposits", petugas.RecordDeposit)
	petugasroutes.Post("/withdrawals", petugas.RecordWithdrawal)
	petugasroutes.Post("/prices", petugas.SetLocalPrice)
	petugasroutes.Get("/prices/:id", petugas.EffectivePrice)
	petugasroutes.Get("/transactions", petugas.ListTransactions)
	petugasroutes.Get("/summary", petugas.UnitSummary)

	nasabahroutes := app.Group("/nasabah", middlewares.SessionAuth, middlewares.RequireRole(models.RoleNasabah))
	nasabahroutes.Get("/me", nasabah.Me)
	nasabahroutes.Get("/history", nasabah.History)
}
