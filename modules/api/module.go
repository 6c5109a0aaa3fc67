package api

import (
	"context"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/felixkapfer/finalghecko/modules/activity"
	"github.com/felixkapfer/finalghecko/modules/project"
	"github.com/felixkapfer/finalghecko/modules/ratelimit"
	"github.com/felixkapfer/finalghecko/modules/task"
	"github.com/felixkapfer/finalghecko/modules/user"
)

// Config holds the HTTP settings.
type Config struct {
	Addr string
	// ExposeGlobalListings serves the cross-owner listings.
	ExposeGlobalListings bool
	// AccessLog enables fiber's request logger.
	AccessLog bool
}

// APIModule is the driving adapter that exposes the REST endpoints.
type APIModule struct {
	app      *fiber.App
	config   Config
	users    user.UserPort
	projects project.ProjectPort
	tasks    task.TaskPort
	activity activity.ActivityPort
	limiter  *ratelimit.Middleware
	logger   types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*APIModule)(nil)
	_ mono.DependentModule       = (*APIModule)(nil)
	_ mono.HealthCheckableModule = (*APIModule)(nil)
)

// NewModule creates the API module. limiter may be nil to disable rate limiting.
func NewModule(config Config, limiter *ratelimit.Middleware, logger types.Logger) *APIModule {
	return &APIModule{config: config, limiter: limiter, logger: logger}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"user", "project", "task", "activity"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "user":
		m.users = user.NewUserAdapter(container)
	case "project":
		m.projects = project.NewProjectAdapter(container)
	case "task":
		m.tasks = task.NewTaskAdapter(container)
	case "activity":
		m.activity = activity.NewActivityAdapter(container)
	}
}

// Start builds the Fiber app and serves it in the background.
func (m *APIModule) Start(_ context.Context) error {
	switch {
	case m.users == nil:
		return fmt.Errorf("user dependency not set")
	case m.projects == nil:
		return fmt.Errorf("project dependency not set")
	case m.tasks == nil:
		return fmt.Errorf("task dependency not set")
	case m.activity == nil:
		return fmt.Errorf("activity dependency not set")
	}

	m.app = m.newApp()

	go func() {
		if err := m.app.Listen(m.config.Addr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	m.logger.Info("HTTP server started", "addr", m.config.Addr)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	m.logger.Info("Shutting down HTTP server")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.config.Addr,
		},
	}
}

func (m *APIModule) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	app.Use(recover.New())
	if m.config.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(cors.New())

	m.setupRoutes(app)
	return app
}

// setupRoutes configures all API routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Get("/health", m.healthHandler)

	v1 := app.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	if m.limiter != nil {
		authRoutes.Use(m.limiter.Handler())
	}
	authRoutes.Post("/register", m.register)
	authRoutes.Post("/login", m.login)
	authRoutes.Post("/refresh", m.refresh)

	protected := v1.Group("")
	protected.Use(AuthMiddleware(m.users))
	if m.limiter != nil {
		protected.Use(m.limiter.Handler())
	}

	protected.Get("/me", m.me)
	protected.Patch("/me", m.updateMe)
	protected.Delete("/me", m.deleteMe)

	// "all" is reserved and never reaches the project id routes.
	protected.Get("/users", m.globalListing(m.listUsers))
	protected.Get("/projects/all", m.globalListing(m.listAllProjects))
	protected.All("/projects/all", notFound)
	protected.Get("/tasks/all", m.globalListing(m.listAllTasks))

	protected.Get("/projects", m.listProjects)
	protected.Post("/projects", m.createProject)
	protected.Get("/projects/:id/duration/:mode", m.projectDuration)
	protected.Get("/projects/:id", m.getProject)
	protected.Patch("/projects/:id", m.updateProject)
	protected.Delete("/projects/:id", m.deleteProject)

	protected.Get("/projects/:projectId/tasks", m.listProjectTasks)
	protected.Post("/projects/:projectId/tasks", m.createTask)
	protected.Get("/projects/:projectId/tasks/status/:status", m.listTasksByStatus)
	protected.Get("/projects/:projectId/tasks/:id", m.getTask)
	protected.Patch("/projects/:projectId/tasks/:id", m.updateTask)
	protected.Put("/projects/:projectId/tasks/:id/status", m.updateTaskStatus)
	protected.Delete("/projects/:projectId/tasks/:id", m.deleteTask)

	protected.Get("/tasks", m.listTasks)
	protected.Get("/tasks/count", m.countTasks)
	protected.Get("/tasks/summary", m.taskSummary)

	protected.Get("/activity", m.listActivity)
}

// globalListing serves h only when cross-owner listings are enabled.
func (m *APIModule) globalListing(h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.config.ExposeGlobalListings {
			return notFound(c)
		}
		return h(c)
	}
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
		Error:   "not_found",
		Message: "Cannot " + c.Method() + " " + c.Path(),
	})
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
