package app

import (
	"net/http"

	"frota-backend/internal/auth"
	"frota-backend/internal/companies"
	"frota-backend/internal/config"
	"frota-backend/internal/constants"
	"frota-backend/internal/dashboard"
	"frota-backend/internal/database"
	"frota-backend/internal/drivers"
	"frota-backend/internal/health"
	"frota-backend/internal/middleware"
	"frota-backend/internal/models"
	"frota-backend/internal/refrigeration"
	"frota-backend/internal/refuelings"
	"frota-backend/internal/sales"
	"frota-backend/internal/suppliers"
	"frota-backend/internal/users"
	"frota-backend/internal/vehicles"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration.
func CreateApp(cfg *config.Config) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	// CORS (before session)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLSuffix,
		DevPassword:   cfg.DevPassword,
	}))

	// Session (Redis); the client is reused by health counters and logout
	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, err
	}
	app.Use(sessionHandler)

	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
		seedAdminUser(db, cfg)
	}

	// --- Routes (no auth) ---
	healthHandlers := &health.Handlers{
		Rdb:            rdb,
		DB:             dbPinger(db),
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/reset", healthHandlers.Reset)

	var userFinder auth.UserFinder
	if db != nil {
		userFinder = &auth.GormUserFinder{DB: db}
	}
	authHandlers := &auth.Handlers{
		UserFinder: userFinder,
		Rdb:        rdb,
		Config:     sessionCfg,
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// --- Protected modules (auth required) ---
	if db != nil && rdb != nil {
		RegisterRoutes(app, db, rdb)
	}

	return app, nil
}

// RegisterRoutes mounts all protected fleet routes. Split out of CreateApp
// so handler tests can mount them on a bare app with a test DB.
func RegisterRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) {
	vehicleService := &vehicles.Service{DB: db}
	vehicleHandlers := &vehicles.Handlers{Service: vehicleService}
	vehicleGroup := app.Group("/api/v1/vehicles", middleware.RequireAuth())
	vehicleGroup.Post("/create-vehicle", middleware.AuthorizePermission(constants.ManageFleet), vehicleHandlers.CreateVehicle)
	vehicleGroup.Get("/get-all-vehicles", middleware.AuthorizePermission(constants.ViewData), vehicleHandlers.GetAllVehicles)
	vehicleGroup.Get("/get-vehicle/:id", middleware.AuthorizePermission(constants.ViewData), vehicleHandlers.GetVehicle)
	vehicleGroup.Put("/update-vehicle/:id", middleware.AuthorizePermission(constants.ManageFleet), vehicleHandlers.UpdateVehicle)
	vehicleGroup.Patch("/update-status/:id", middleware.AuthorizePermission(constants.ManageFleet), vehicleHandlers.UpdateStatus)
	vehicleGroup.Post("/link-trailer", middleware.AuthorizePermission(constants.ManageFleet), vehicleHandlers.LinkTrailer)
	vehicleGroup.Post("/unlink-trailer", middleware.AuthorizePermission(constants.ManageFleet), vehicleHandlers.UnlinkTrailer)
	vehicleGroup.Get("/composition/:id", middleware.AuthorizePermission(constants.ViewData), vehicleHandlers.GetComposition)
	vehicleGroup.Get("/consumption/:id", middleware.AuthorizePermission(constants.ViewData), vehicleHandlers.GetConsumption)

	refrigerationService := &refrigeration.Service{DB: db}
	refrigerationHandlers := &refrigeration.Handlers{Service: refrigerationService}
	refrigerationGroup := app.Group("/api/v1/refrigeration", middleware.RequireAuth())
	refrigerationGroup.Post("/create-unit", middleware.AuthorizePermission(constants.ManageFleet), refrigerationHandlers.CreateUnit)
	refrigerationGroup.Get("/get-all-units", middleware.AuthorizePermission(constants.ViewData), refrigerationHandlers.GetAllUnits)
	refrigerationGroup.Get("/get-unit/:id", middleware.AuthorizePermission(constants.ViewData), refrigerationHandlers.GetUnit)
	refrigerationGroup.Put("/update-unit/:id", middleware.AuthorizePermission(constants.ManageFleet), refrigerationHandlers.UpdateUnit)
	refrigerationGroup.Patch("/link-vehicle/:id", middleware.AuthorizePermission(constants.ManageFleet), refrigerationHandlers.LinkVehicle)
	refrigerationGroup.Patch("/update-status/:id", middleware.AuthorizePermission(constants.ManageFleet), refrigerationHandlers.UpdateStatus)
	refrigerationGroup.Get("/consumption/:id", middleware.AuthorizePermission(constants.ViewData), refrigerationHandlers.GetConsumption)

	refuelingService := &refuelings.Service{DB: db}
	refuelingHandlers := &refuelings.Handlers{Service: refuelingService}
	refuelingGroup := app.Group("/api/v1/refuelings", middleware.RequireAuth())
	refuelingGroup.Post("/create-refueling", middleware.AuthorizePermission(constants.RegisterRefueling), refuelingHandlers.CreateRefueling)
	refuelingGroup.Get("/vehicle/:id", middleware.AuthorizePermission(constants.ViewData), refuelingHandlers.GetVehicleRefuelings)
	refuelingGroup.Get("/unit/:id", middleware.AuthorizePermission(constants.ViewData), refuelingHandlers.GetUnitRefuelings)
	refuelingGroup.Patch("/update-refueling/:id", middleware.AuthorizePermission(constants.RegisterRefueling), refuelingHandlers.UpdateRefueling)
	refuelingGroup.Delete("/delete-refueling/:id", middleware.AuthorizePermission(constants.RegisterRefueling), refuelingHandlers.DeleteRefueling)

	saleService := &sales.Service{DB: db}
	saleHandlers := &sales.Handlers{Service: saleService}
	saleGroup := app.Group("/api/v1/sales", middleware.RequireAuth(), middleware.AuthorizePermission(constants.SellAsset))
	saleGroup.Post("/sell-vehicle/:id", saleHandlers.SellVehicle)
	saleGroup.Post("/reverse-sale-vehicle/:id", saleHandlers.ReverseSaleVehicle)
	saleGroup.Post("/sell-unit/:id", saleHandlers.SellUnit)
	saleGroup.Post("/reverse-sale-unit/:id", saleHandlers.ReverseSaleUnit)

	dashboardService := &dashboard.Service{DB: db}
	dashboardHandlers := &dashboard.Handlers{Service: dashboardService}
	dashboardGroup := app.Group("/api/v1/dashboard", middleware.RequireAuth(), middleware.AuthorizePermission(constants.ViewData))
	dashboardGroup.Get("/summary", dashboardHandlers.GetSummary)
	dashboardGroup.Get("/ranking/vehicles", dashboardHandlers.GetVehicleRanking)
	dashboardGroup.Get("/ranking/units", dashboardHandlers.GetUnitRanking)

	driverService := &drivers.Service{DB: db}
	driverHandlers := &drivers.Handlers{Service: driverService}
	driverGroup := app.Group("/api/v1/drivers", middleware.RequireAuth())
	driverGroup.Post("/create-driver", middleware.AuthorizePermission(constants.ManageRegistry), driverHandlers.CreateDriver)
	driverGroup.Get("/get-all-drivers", middleware.AuthorizePermission(constants.ViewData), driverHandlers.GetAllDrivers)
	driverGroup.Get("/get-driver/:id", middleware.AuthorizePermission(constants.ViewData), driverHandlers.GetDriver)
	driverGroup.Patch("/update-driver/:id", middleware.AuthorizePermission(constants.ManageRegistry), driverHandlers.UpdateDriver)
	driverGroup.Delete("/delete-driver/:id", middleware.AuthorizePermission(constants.ManageRegistry), driverHandlers.DeleteDriver)

	supplierService := &suppliers.Service{DB: db}
	supplierHandlers := &suppliers.Handlers{Service: supplierService}
	supplierGroup := app.Group("/api/v1/suppliers", middleware.RequireAuth())
	supplierGroup.Post("/create-supplier", middleware.AuthorizePermission(constants.ManageRegistry), supplierHandlers.CreateSupplier)
	supplierGroup.Get("/get-all-suppliers", middleware.AuthorizePermission(constants.ViewData), supplierHandlers.GetAllSuppliers)
	supplierGroup.Get("/get-supplier/:id", middleware.AuthorizePermission(constants.ViewData), supplierHandlers.GetSupplier)
	supplierGroup.Patch("/update-supplier/:id", middleware.AuthorizePermission(constants.ManageRegistry), supplierHandlers.UpdateSupplier)
	supplierGroup.Delete("/delete-supplier/:id", middleware.AuthorizePermission(constants.ManageRegistry), supplierHandlers.DeleteSupplier)

	companyService := &companies.Service{DB: db}
	companyHandlers := &companies.Handlers{Service: companyService}
	companyGroup := app.Group("/api/v1/companies", middleware.RequireAuth())
	companyGroup.Post("/create-company", middleware.AuthorizePermission(constants.ManageRegistry), companyHandlers.CreateCompany)
	companyGroup.Get("/get-all-companies", middleware.AuthorizePermission(constants.ViewData), companyHandlers.GetAllCompanies)
	companyGroup.Get("/get-company/:id", middleware.AuthorizePermission(constants.ViewData), companyHandlers.GetCompany)
	companyGroup.Patch("/update-company/:id", middleware.AuthorizePermission(constants.ManageRegistry), companyHandlers.UpdateCompany)
	companyGroup.Delete("/delete-company/:id", middleware.AuthorizePermission(constants.ManageRegistry), companyHandlers.DeleteCompany)

	userService := &users.Service{DB: db, Rdb: rdb}
	userHandlers := &users.Handlers{Service: userService}
	userGroup := app.Group("/api/v1/users", middleware.RequireAuth())
	userGroup.Post("/create-user", middleware.AuthorizePermission(constants.ManageUsers), userHandlers.CreateUser)
	userGroup.Get("/get-all-users", middleware.AuthorizePermission(constants.ManageUsers), userHandlers.GetAllUsers)
	userGroup.Get("/get-user/:id", middleware.AuthorizePermission(constants.ManageUsers), userHandlers.GetUser)
	userGroup.Put("/update-user/:id", middleware.AuthorizePermission(constants.ManageUsers), userHandlers.UpdateUser)
	userGroup.Patch("/update-role/:id", middleware.AuthorizePermission(constants.AssignRole), userHandlers.UpdateRole)
	userGroup.Delete("/remove-user/:id", middleware.AuthorizePermission(constants.RemoveUser), userHandlers.RemoveUser)
}

// gormPinger adapts *gorm.DB to the health DBPinger interface.
type gormPinger struct{ db *gorm.DB }

func (p gormPinger) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func dbPinger(db *gorm.DB) health.DBPinger {
	if db == nil {
		return nil
	}
	return gormPinger{db: db}
}

// seedAdminUser creates a bootstrap admin when the Users table is empty and
// seed credentials are configured.
func seedAdminUser(db *gorm.DB, cfg *config.Config) {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return
	}
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), 10)
	if err != nil {
		return
	}
	u := models.User{
		Fullname:     "Administrator",
		Email:        cfg.SeedAdminEmail,
		PasswordHash: string(hash),
		Role:         constants.Admin,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Error().Err(err).Msg("Failed to seed admin user")
		return
	}
	log.Info().Str("email", cfg.SeedAdminEmail).Msg("Seeded bootstrap admin user")
}

// Handler returns the Fiber app as a net/http handler.
func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
