package handler

import (
	"errors"
	"net/http"

	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker/service"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/logger"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/middleware"
	"github.com/gin-gonic/gin"
)

type taskRequest struct {
	Title        string   `json:"title"`
	CreatedAt    string   `json:"created_at"`
	DueDate      string   `json:"due_date"`
	Priority     string   `json:"priority"`
	Note         string   `json:"note"`
	Reason       string   `json:"reason"`
	Status       string   `json:"status"`
	AssignedTo   string   `json:"assigned_to"`
	PriorityTags []string `json:"priority_tags"`
}

func (r *taskRequest) toTask() *tracker.Task {
	return &tracker.Task{
		Title:        r.Title,
		CreatedAt:    r.CreatedAt,
		DueDate:      r.DueDate,
		Priority:     r.Priority,
		Note:         r.Note,
		Reason:       r.Reason,
		Status:       r.Status,
		AssignedTo:   r.AssignedTo,
		PriorityTags: r.PriorityTags,
	}
}

type qtaskRequest struct {
	Date          string   `json:"date"`
	WorkTasks     []string `json:"workTasks"`
	PersonalTasks []string `json:"personalTasks"`
	AssignedBy    string   `json:"assigned_by"`
	Notes         string   `json:"notes"`
	TimeSpent     string   `json:"timeSpent"`
}

// RegisterRoutes wires the task and qtask endpoints behind the auth gate.
func RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, tasks *service.TaskService, qtasks *service.QTaskService) {
	api := r.Group("/api", auth)

	api.GET("/tasks", func(c *gin.Context) {
		list, err := tasks.ListOwned(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			logger.Errorf("list tasks: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tasks"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	api.GET("/tasks/:id", func(c *gin.Context) {
		task, err := tasks.GetOwned(c.Request.Context(), middleware.UserID(c), c.Param("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
				return
			}
			logger.Errorf("get task: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch task"})
			return
		}
		c.JSON(http.StatusOK, task)
	})

	api.POST("/tasks", func(c *gin.Context) {
		var req taskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		task, err := tasks.Create(c.Request.Context(), middleware.UserID(c), req.toTask())
		if err != nil {
			logger.Errorf("create task: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create task"})
			return
		}
		c.JSON(http.StatusCreated, task)
	})

	api.PUT("/tasks/:id", func(c *gin.Context) {
		var req taskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		task, err := tasks.UpdateOwned(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.toTask())
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
				return
			}
			logger.Errorf("update task: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update task"})
			return
		}
		c.JSON(http.StatusOK, task)
	})

	api.GET("/qtasks", func(c *gin.Context) {
		list, err := qtasks.ListOwned(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			logger.Errorf("list qtasks: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch QTasks"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	api.POST("/qtasks", func(c *gin.Context) {
		var req qtaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		q, err := qtasks.Create(c.Request.Context(), middleware.UserID(c), service.QTaskInput{
			Date:          req.Date,
			WorkTasks:     req.WorkTasks,
			PersonalTasks: req.PersonalTasks,
			AssignedBy:    req.AssignedBy,
			Notes:         req.Notes,
			TimeSpent:     req.TimeSpent,
		})
		if err != nil {
			logger.Errorf("create qtask: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create QTask"})
			return
		}
		c.JSON(http.StatusCreated, q)
	})
}
