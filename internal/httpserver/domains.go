package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	attendanceHTTP "workspace-admin/internal/attendance/delivery/http"
	attendanceRepo "workspace-admin/internal/attendance/repository/api"
	attendanceUC "workspace-admin/internal/attendance/usecase"
	authHTTP "workspace-admin/internal/auth/delivery/http"
	authRepo "workspace-admin/internal/auth/repository/api"
	authUC "workspace-admin/internal/auth/usecase"
	bookingHTTP "workspace-admin/internal/booking/delivery/http"
	"workspace-admin/internal/booking/mirror"
	bookingRepo "workspace-admin/internal/booking/repository/api"
	bookingUC "workspace-admin/internal/booking/usecase"
	dashboardHTTP "workspace-admin/internal/dashboard/delivery/http"
	dashboardRepo "workspace-admin/internal/dashboard/repository/api"
	dashboardUC "workspace-admin/internal/dashboard/usecase"
	expenseHTTP "workspace-admin/internal/expense/delivery/http"
	expenseRepo "workspace-admin/internal/expense/repository/api"
	expenseUC "workspace-admin/internal/expense/usecase"
	"workspace-admin/internal/middleware"
	planHTTP "workspace-admin/internal/plan/delivery/http"
	planRepo "workspace-admin/internal/plan/repository/api"
	planUC "workspace-admin/internal/plan/usecase"
	productHTTP "workspace-admin/internal/product/delivery/http"
	productRepo "workspace-admin/internal/product/repository/api"
	productUC "workspace-admin/internal/product/usecase"
	subscriberHTTP "workspace-admin/internal/subscriber/delivery/http"
	subscriberRepo "workspace-admin/internal/subscriber/repository/api"
	subscriberUC "workspace-admin/internal/subscriber/usecase"
	transactionHTTP "workspace-admin/internal/transaction/delivery/http"
	transactionRepo "workspace-admin/internal/transaction/repository/api"
	transactionUC "workspace-admin/internal/transaction/usecase"
	userHTTP "workspace-admin/internal/user/delivery/http"
	userRepo "workspace-admin/internal/user/repository/api"
	userUC "workspace-admin/internal/user/usecase"
	workspaceHTTP "workspace-admin/internal/workspace/delivery/http"
	workspaceRepo "workspace-admin/internal/workspace/repository/api"
	workspaceUC "workspace-admin/internal/workspace/usecase"
)

// registerDomainRoutes wires repository, usecase and handler for every domain.
//
// Each domain follows the same four steps:
//  1. Repository:   repo := xRepo.New(srv.backend, srv.l)
//  2. UseCase:      uc := xUC.New(srv.l, repo, ...)
//  3. HTTP Handler: h := xHTTP.New(srv.l, uc, ...)
//  4. Routes:       xHTTP.RegisterRoutes(api, h, mw) and xHTTP.RegisterPageRoutes(app, h, mw)
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	app := srv.gin.Group("/app")

	// Auth: public forms plus the signed-in profile endpoints
	authH := authHTTP.New(srv.l, authUC.New(srv.l, authRepo.New(srv.backend, srv.l), srv.sessions), mw)
	authHTTP.RegisterRoutes(srv.gin.Group("/auth"), authH, mw)
	authHTTP.RegisterProfileRoutes(api, authH, mw)

	// Users
	userH := userHTTP.New(srv.l, userUC.New(srv.l, userRepo.New(srv.backend, srv.l), srv.perPage))
	register(api, app, userH, mw, userHTTP.RegisterRoutes, userHTTP.RegisterPageRoutes)

	// Plans are shared with subscribers for end date calculation
	plans := planUC.New(srv.l, planRepo.New(srv.backend, srv.l))
	register(api, app, planHTTP.New(srv.l, plans, srv.currency), mw, planHTTP.RegisterRoutes, planHTTP.RegisterPageRoutes)

	subscribers := subscriberUC.New(srv.l, subscriberRepo.New(srv.backend, srv.l), plans, srv.calendar, srv.perPage)
	register(api, app, subscriberHTTP.New(srv.l, subscribers, srv.calendar, srv.currency), mw,
		subscriberHTTP.RegisterRoutes, subscriberHTTP.RegisterPageRoutes)

	// Workspaces and transactions also back the booking flow
	workspaces := workspaceUC.New(srv.l, workspaceRepo.New(srv.backend, srv.l))
	register(api, app, workspaceHTTP.New(srv.l, workspaces), mw, workspaceHTTP.RegisterRoutes, workspaceHTTP.RegisterPageRoutes)

	transactions := transactionUC.New(srv.l, transactionRepo.New(srv.backend, srv.l), srv.calendar, srv.perPage)
	register(api, app, transactionHTTP.New(srv.l, transactions, srv.currency), mw,
		transactionHTTP.RegisterRoutes, transactionHTTP.RegisterPageRoutes)

	deps := bookingUC.Deps{
		Repo:         bookingRepo.New(srv.backend, srv.l),
		Workspaces:   workspaces,
		Transactions: transactions,
		Calendar:     srv.calendar,
		PerPage:      srv.perPage,
	}
	if srv.events != nil {
		deps.Mirror = mirror.New(srv.events)
		srv.l.Infof(ctx, "Booking calendar mirror enabled")
	}
	register(api, app, bookingHTTP.New(srv.l, bookingUC.New(srv.l, deps), srv.currency), mw,
		bookingHTTP.RegisterRoutes, bookingHTTP.RegisterPageRoutes)

	// Inventory and costs
	register(api, app, productHTTP.New(srv.l, productUC.New(srv.l, productRepo.New(srv.backend, srv.l)), srv.currency), mw,
		productHTTP.RegisterRoutes, productHTTP.RegisterPageRoutes)
	register(api, app, expenseHTTP.New(srv.l, expenseUC.New(srv.l, expenseRepo.New(srv.backend, srv.l)), srv.currency), mw,
		expenseHTTP.RegisterRoutes, expenseHTTP.RegisterPageRoutes)

	// Staff attendance
	register(api, app, attendanceHTTP.New(srv.l, attendanceUC.New(srv.l, attendanceRepo.New(srv.backend, srv.l), srv.calendar)), mw,
		attendanceHTTP.RegisterRoutes, attendanceHTTP.RegisterPageRoutes)

	// Dashboard and reports
	register(api, app, dashboardHTTP.New(srv.l, dashboardUC.New(srv.l, dashboardRepo.New(srv.backend, srv.l), srv.calendar), srv.currency), mw,
		dashboardHTTP.RegisterRoutes, dashboardHTTP.RegisterPageRoutes)

	srv.l.Infof(ctx, "Domain routes registered against %s", srv.backend.BaseURL())
	return nil
}

// register maps the JSON and page routes of one domain handler.
func register[H any](api, app *gin.RouterGroup, h H, mw middleware.Middleware,
	routes, pages func(*gin.RouterGroup, H, middleware.Middleware)) {
	routes(api, h, mw)
	pages(app, h, mw)
}
