package http

import (
	"net/http"

	"pharmacare-api/internal/delivery/http/handler"
	"pharmacare-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	customerHandler      *handler.CustomerHandler
	deliveryHandler      *handler.DeliveryHandler
	pharmacistHandler    *handler.PharmacistHandler
	adminPharmacyHandler *handler.AdminPharmacyHandler
	pharmacyHandler      *handler.PharmacyHandler
	productHandler       *handler.ProductHandler
	categoryHandler      *handler.ProductCategoryHandler
	prescriptionHandler  *handler.PrescriptionHandler
	orderHandler         *handler.OrderHandler
	statsHandler         *handler.StatsHandler
	auditLogHandler      *handler.AuditLogHandler
	userHandler          *handler.UserHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	uploadsDir           string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	customerHandler *handler.CustomerHandler,
	deliveryHandler *handler.DeliveryHandler,
	pharmacistHandler *handler.PharmacistHandler,
	adminPharmacyHandler *handler.AdminPharmacyHandler,
	pharmacyHandler *handler.PharmacyHandler,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.ProductCategoryHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	orderHandler *handler.OrderHandler,
	statsHandler *handler.StatsHandler,
	auditLogHandler *handler.AuditLogHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	uploadsDir string,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		customerHandler:      customerHandler,
		deliveryHandler:      deliveryHandler,
		pharmacistHandler:    pharmacistHandler,
		adminPharmacyHandler: adminPharmacyHandler,
		pharmacyHandler:      pharmacyHandler,
		productHandler:       productHandler,
		categoryHandler:      categoryHandler,
		prescriptionHandler:  prescriptionHandler,
		orderHandler:         orderHandler,
		statsHandler:         statsHandler,
		auditLogHandler:      auditLogHandler,
		userHandler:          userHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		uploadsDir:           uploadsDir,
	}
}

func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Login endpoints (public)
	api.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/login/customer", r.authHandler.LoginCustomer).Methods(http.MethodPost)
	api.HandleFunc("/login/delivery", r.authHandler.LoginDelivery).Methods(http.MethodPost)
	api.HandleFunc("/login/pharmacist", r.authHandler.LoginPharmacist).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Everything below requires a valid access token.
	authed := api.NewRoute().Subrouter()
	authed.Use(r.authMiddleware.Authenticate)

	authed.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Platform administration
	admin := authed.NewRoute().Subrouter()
	admin.Use(middleware.RequireAdmin)

	registerCRUD(admin, "/customers", crudHandlers{
		index:  r.customerHandler.Index,
		show:   r.customerHandler.Show,
		create: r.customerHandler.Create,
		update: r.customerHandler.Update,
		delete: r.customerHandler.Delete,

		createBulk: r.customerHandler.CreateBulk,
		updateBulk: r.customerHandler.UpdateBulk,
		deleteBulk: r.customerHandler.DeleteBulk,
	})
	admin.HandleFunc("/customers/{id}/block", r.customerHandler.Block).Methods(http.MethodPut)
	admin.HandleFunc("/customers/{id}/unblock", r.customerHandler.Unblock).Methods(http.MethodPut)
	admin.HandleFunc("/customers/bulk/block", r.customerHandler.BlockBulk).Methods(http.MethodPut)
	admin.HandleFunc("/customers/bulk/unblock", r.customerHandler.UnblockBulk).Methods(http.MethodPut)

	registerCRUD(admin, "/deliveries", crudHandlers{
		index:  r.deliveryHandler.Index,
		show:   r.deliveryHandler.Show,
		create: r.deliveryHandler.Create,
		update: r.deliveryHandler.Update,
		delete: r.deliveryHandler.Delete,

		createBulk: r.deliveryHandler.CreateBulk,
		updateBulk: r.deliveryHandler.UpdateBulk,
		deleteBulk: r.deliveryHandler.DeleteBulk,
	})
	admin.HandleFunc("/deliveries/{id}/block", r.deliveryHandler.Block).Methods(http.MethodPut)
	admin.HandleFunc("/deliveries/{id}/unblock", r.deliveryHandler.Unblock).Methods(http.MethodPut)
	admin.HandleFunc("/deliveries/bulk/block", r.deliveryHandler.BlockBulk).Methods(http.MethodPut)
	admin.HandleFunc("/deliveries/bulk/unblock", r.deliveryHandler.UnblockBulk).Methods(http.MethodPut)

	registerCRUD(admin, "/adminPharmacies", crudHandlers{
		index:  r.adminPharmacyHandler.Index,
		show:   r.adminPharmacyHandler.Show,
		create: r.adminPharmacyHandler.Create,
		update: r.adminPharmacyHandler.Update,
		delete: r.adminPharmacyHandler.Delete,

		createBulk: r.adminPharmacyHandler.CreateBulk,
		updateBulk: r.adminPharmacyHandler.UpdateBulk,
		deleteBulk: r.adminPharmacyHandler.DeleteBulk,
	})

	registerCRUD(admin, "/prescriptions", crudHandlers{
		index:  r.prescriptionHandler.Index,
		show:   r.prescriptionHandler.Show,
		create: r.prescriptionHandler.Create,
		update: r.prescriptionHandler.Update,
		delete: r.prescriptionHandler.Delete,

		createBulk: r.prescriptionHandler.CreateBulk,
		updateBulk: r.prescriptionHandler.UpdateBulk,
		deleteBulk: r.prescriptionHandler.DeleteBulk,
	})

	admin.HandleFunc("/statistique", r.statsHandler.AdminStats).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.Index).Methods(http.MethodGet)

	// The order list is an administration view; the remaining order
	// routes are open to any authenticated account.
	admin.HandleFunc("/orders", r.orderHandler.Index).Methods(http.MethodGet)

	// Pharmacy back-office
	adminPharmacy := authed.NewRoute().Subrouter()
	adminPharmacy.Use(middleware.RequireAdminPharmacy)

	registerCRUD(adminPharmacy, "/pharmacists", crudHandlers{
		index:  r.pharmacistHandler.Index,
		show:   r.pharmacistHandler.Show,
		create: r.pharmacistHandler.Create,
		update: r.pharmacistHandler.Update,
		delete: r.pharmacistHandler.Delete,

		createBulk: r.pharmacistHandler.CreateBulk,
		updateBulk: r.pharmacistHandler.UpdateBulk,
		deleteBulk: r.pharmacistHandler.DeleteBulk,
	})

	registerCRUD(adminPharmacy, "/products", crudHandlers{
		index:  r.productHandler.Index,
		show:   r.productHandler.Show,
		create: r.productHandler.Create,
		update: r.productHandler.Update,
		delete: r.productHandler.Delete,

		createBulk: r.productHandler.CreateBulk,
		updateBulk: r.productHandler.UpdateBulk,
		deleteBulk: r.productHandler.DeleteBulk,
	})

	registerCRUD(adminPharmacy, "/categories", crudHandlers{
		index:  r.categoryHandler.Index,
		show:   r.categoryHandler.Show,
		create: r.categoryHandler.Create,
		update: r.categoryHandler.Update,
		delete: r.categoryHandler.Delete,

		createBulk: r.categoryHandler.CreateBulk,
		updateBulk: r.categoryHandler.UpdateBulk,
		deleteBulk: r.categoryHandler.DeleteBulk,
	})

	adminPharmacy.HandleFunc("/statistiqueADP", r.statsHandler.AdminPharmacyStats).Methods(http.MethodGet)

	// Pharmacies and the back-office profile are shared by both
	// administrator kinds.
	anyAdmin := authed.NewRoute().Subrouter()
	anyAdmin.Use(middleware.RequireAnyAdmin)

	anyAdmin.HandleFunc("/user/profile", r.userHandler.GetProfile).Methods(http.MethodGet)
	anyAdmin.HandleFunc("/profile/update", r.userHandler.UpdateProfile).Methods(http.MethodPost)
	anyAdmin.HandleFunc("/password/update", r.userHandler.UpdatePassword).Methods(http.MethodPost)

	registerCRUD(anyAdmin, "/pharmacies", crudHandlers{
		index:  r.pharmacyHandler.Index,
		show:   r.pharmacyHandler.Show,
		create: r.pharmacyHandler.Create,
		update: r.pharmacyHandler.Update,
		delete: r.pharmacyHandler.Delete,

		createBulk: r.pharmacyHandler.CreateBulk,
		updateBulk: r.pharmacyHandler.UpdateBulk,
		deleteBulk: r.pharmacyHandler.DeleteBulk,
	})

	// Order mutations and lookups are open to any authenticated account;
	// only the list above is admin-gated.
	authed.HandleFunc("/orders", r.orderHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/orders/bulk", r.orderHandler.CreateBulk).Methods(http.MethodPost)
	authed.HandleFunc("/orders/bulk", r.orderHandler.UpdateBulk).Methods(http.MethodPut)
	authed.HandleFunc("/orders/bulk", r.orderHandler.DeleteBulk).Methods(http.MethodDelete)
	authed.HandleFunc("/orders/{id}", r.orderHandler.Show).Methods(http.MethodGet)
	authed.HandleFunc("/orders/{id}", r.orderHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/orders/{id}", r.orderHandler.Delete).Methods(http.MethodDelete)

	// Uploaded pictures
	r.router.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(r.uploadsDir))),
	)

	// CORS wraps the whole router rather than running as a mux
	// middleware: every route carries a method matcher, so OPTIONS
	// preflights never match a route and would bypass mux middleware.
	return r.corsMiddleware.Handle(r.router)
}

type crudHandlers struct {
	index  http.HandlerFunc
	show   http.HandlerFunc
	create http.HandlerFunc
	update http.HandlerFunc
	delete http.HandlerFunc

	createBulk http.HandlerFunc
	updateBulk http.HandlerFunc
	deleteBulk http.HandlerFunc
}

// registerCRUD wires the shared route shape every entity follows. Bulk
// routes must come before /{id} so "bulk" is not parsed as an id.
func registerCRUD(router *mux.Router, prefix string, h crudHandlers) {
	router.HandleFunc(prefix, h.index).Methods(http.MethodGet)
	router.HandleFunc(prefix, h.create).Methods(http.MethodPost)
	router.HandleFunc(prefix+"/bulk", h.createBulk).Methods(http.MethodPost)
	router.HandleFunc(prefix+"/bulk", h.updateBulk).Methods(http.MethodPut)
	router.HandleFunc(prefix+"/bulk", h.deleteBulk).Methods(http.MethodDelete)
	router.HandleFunc(prefix+"/{id}", h.show).Methods(http.MethodGet)
	router.HandleFunc(prefix+"/{id}", h.update).Methods(http.MethodPut)
	router.HandleFunc(prefix+"/{id}", h.delete).Methods(http.MethodDelete)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
