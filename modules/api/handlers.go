package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/felixkapfer/finalghecko/modules/envelope"
	"github.com/felixkapfer/finalghecko/modules/project"
	"github.com/felixkapfer/finalghecko/modules/task"
	"github.com/felixkapfer/finalghecko/modules/user"
)

// statusOf maps an envelope onto the HTTP status code.
func statusOf(resp envelope.Response) int {
	switch {
	case !resp.Validated():
		return fiber.StatusBadRequest
	case resp.Status.Status:
		return fiber.StatusOK
	case resp.Code() != 0:
		return resp.Code()
	default:
		return fiber.StatusInternalServerError
	}
}

// reply writes the envelope, or a 500 when the module could not be reached.
func (m *APIModule) reply(c *fiber.Ctx, resp envelope.Response, err error) error {
	if err != nil {
		m.logger.Error("Service call failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "service_error",
			Message: "The request could not be processed",
		})
	}
	return c.Status(statusOf(resp)).JSON(resp)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: "Invalid request body",
	})
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module":          "api",
			"addr":            m.config.Addr,
			"global-listings": m.config.ExposeGlobalListings,
			"rate-limited":    m.limiter != nil,
		},
	})
}

// register handles POST /api/v1/auth/register.
func (m *APIModule) register(c *fiber.Ctx) error {
	var req user.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := m.users.Register(c.UserContext(), req)
	return m.reply(c, resp, err)
}

// login handles POST /api/v1/auth/login.
func (m *APIModule) login(c *fiber.Ctx) error {
	var req user.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := m.users.Login(c.UserContext(), req)
	return m.reply(c, resp, err)
}

// refresh handles POST /api/v1/auth/refresh.
func (m *APIModule) refresh(c *fiber.Ctx) error {
	var req user.RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return badBody(c)
	}
	resp, err := m.users.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return m.reply(c, envelope.Response{}, err)
	}
	if !resp.Valid {
		return unauthorized(c, resp.Error)
	}
	return c.JSON(resp.Tokens)
}

// me handles GET /api/v1/me.
func (m *APIModule) me(c *fiber.Ctx) error {
	resp, err := m.users.Get(c.UserContext(), ownerID(c))
	return m.reply(c, resp, err)
}

// updateMe handles PATCH /api/v1/me.
func (m *APIModule) updateMe(c *fiber.Ctx) error {
	var req user.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	req.OwnerID = ownerID(c)
	resp, err := m.users.Update(c.UserContext(), req)
	return m.reply(c, resp, err)
}

// deleteMe handles DELETE /api/v1/me.
func (m *APIModule) deleteMe(c *fiber.Ctx) error {
	resp, err := m.users.Delete(c.UserContext(), ownerID(c))
	return m.reply(c, resp, err)
}

// listUsers handles GET /api/v1/users.
func (m *APIModule) listUsers(c *fiber.Ctx) error {
	resp, err := m.users.List(c.UserContext())
	return m.reply(c, resp, err)
}

// listProjects handles GET /api/v1/projects.
func (m *APIModule) listProjects(c *fiber.Ctx) error {
	resp, err := m.projects.List(c.UserContext(), ownerID(c))
	return m.reply(c, resp, err)
}

// listAllProjects handles GET /api/v1/projects/all.
func (m *APIModule) listAllProjects(c *fiber.Ctx) error {
	resp, err := m.projects.ListAll(c.UserContext())
	return m.reply(c, resp, err)
}

// createProject handles POST /api/v1/projects.
func (m *APIModule) createProject(c *fiber.Ctx) error {
	var req project.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	req.OwnerID = ownerID(c)
	resp, err := m.projects.Create(c.UserContext(), req)
	return m.reply(c, resp, err)
}

// getProject handles GET /api/v1/projects/:id.
func (m *APIModule) getProject(c *fiber.Ctx) error {
	resp, err := m.projects.Get(c.UserContext(), ownerID(c), c.Params("id"))
	return m.reply(c, resp, err)
}

// updateProject handles PATCH /api/v1/projects/:id.
func (m *APIModule) updateProject(c *fiber.Ctx) error {
	var req project.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	req.OwnerID = ownerID(c)
	req.ProjectID = c.Params("id")
	resp, err := m.projects.Update(c.UserContext(), req)
	return m.reply(c, resp, err)
}

// deleteProject handles DELETE /api/v1/projects/:id.
func (m *APIModule) deleteProject(c *fiber.Ctx) error {
	resp, err := m.projects.Delete(c.UserContext(), ownerID(c), c.Params("id"))
	return m.reply(c, resp, err)
}

// projectDuration handles GET /api/v1/projects/:id/duration/:mode.
func (m *APIModule) projectDuration(c *fiber.Ctx) error {
	resp, err := m.projects.Duration(c.UserContext(), project.DurationRequest{
		OwnerID:   ownerID(c),
		ProjectID: c.Params("id"),
		Mode:      c.Params("mode"),
	})
	return m.reply(c, resp, err)
}

// listProjectTasks handles GET /api/v1/projects/:projectId/tasks.
func (m *APIModule) listProjectTasks(c *fiber.Ctx) error {
	resp, err := m.tasks.ListByProject(c.UserContext(), ownerID(c), c.Params("projectId"))
	return m.reply(c, resp, err)
}

// createTask handles POST /api/v1/projects/:projectId/tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	var req task.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	req.OwnerID = ownerID(c)
	req.ProjectID = c.Params("projectId")
	resp, err := m.tasks.Create(c.UserContext(), req)
	return m.reply(c, resp, err)
}

// listTasksByStatus handles GET /api/v1/projects/:projectId/tasks/status/:status.
func (m *APIModule) listTasksByStatus(c *fiber.Ctx) error {
	resp, err := m.tasks.ListByStatus(c.UserContext(), task.ListByStatusRequest{
		OwnerID:   ownerID(c),
		ProjectID: c.Params("projectId"),
		Status:    c.Params("status"),
	})
	return m.reply(c, resp, err)
}

func taskAddress(c *fiber.Ctx) task.GetRequest {
	return task.GetRequest{OwnerID: ownerID(c), ProjectID: c.Params("projectId"), TaskID: c.Params("id")}
}

// getTask handles GET /api/v1/projects/:projectId/tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	resp, err := m.tasks.Get(c.UserContext(), taskAddress(c))
	return m.reply(c, resp, err)
}

// updateTask handles PATCH /api/v1/projects/:projectId/tasks/:id.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	var req task.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	addr := taskAddress(c)
	req.OwnerID, req.ProjectID, req.TaskID = addr.OwnerID, addr.ProjectID, addr.TaskID
	resp, err := m.tasks.Update(c.UserContext(), req)
	return m.reply(c, resp, err)
}

// updateTaskStatus handles PUT /api/v1/projects/:projectId/tasks/:id/status.
func (m *APIModule) updateTaskStatus(c *fiber.Ctx) error {
	var body StatusRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	addr := taskAddress(c)
	resp, err := m.tasks.UpdateStatus(c.UserContext(), task.UpdateStatusRequest{
		OwnerID:   addr.OwnerID,
		ProjectID: addr.ProjectID,
		TaskID:    addr.TaskID,
		Status:    body.Status,
	})
	return m.reply(c, resp, err)
}

// deleteTask handles DELETE /api/v1/projects/:projectId/tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	resp, err := m.tasks.Delete(c.UserContext(), taskAddress(c))
	return m.reply(c, resp, err)
}

// listTasks handles GET /api/v1/tasks.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	resp, err := m.tasks.List(c.UserContext(), ownerID(c))
	return m.reply(c, resp, err)
}

// listAllTasks handles GET /api/v1/tasks/all.
func (m *APIModule) listAllTasks(c *fiber.Ctx) error {
	resp, err := m.tasks.ListAll(c.UserContext())
	return m.reply(c, resp, err)
}

// countTasks handles GET /api/v1/tasks/count?status=&project-id=.
func (m *APIModule) countTasks(c *fiber.Ctx) error {
	resp, err := m.tasks.CountByStatus(c.UserContext(), task.CountRequest{
		OwnerID:   ownerID(c),
		ProjectID: c.Query("project-id"),
		Status:    c.Query("status"),
	})
	return m.reply(c, resp, err)
}

// taskSummary handles GET /api/v1/tasks/summary?project-id=.
func (m *APIModule) taskSummary(c *fiber.Ctx) error {
	resp, err := m.tasks.Summary(c.UserContext(), task.SummaryRequest{
		OwnerID:   ownerID(c),
		ProjectID: c.Query("project-id"),
	})
	return m.reply(c, resp, err)
}

// listActivity handles GET /api/v1/activity.
func (m *APIModule) listActivity(c *fiber.Ctx) error {
	resp, err := m.activity.List(c.UserContext(), ownerID(c))
	return m.reply(c, resp, err)
}
