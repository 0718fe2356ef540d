package handler

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hafidzramadhan/talent-match/internal/dto"
	"github.com/hafidzramadhan/talent-match/internal/middleware"
	"github.com/hafidzramadhan/talent-match/internal/usecase"
	"github.com/hafidzramadhan/talent-match/internal/util"
)

type BenchmarkHandler struct {
	uc       *usecase.BenchmarkUsecase
	validate *validator.Validate
}

func NewBenchmarkHandler(uc *usecase.BenchmarkUsecase) *BenchmarkHandler {
	return &BenchmarkHandler{uc: uc, validate: validator.New()}
}

func (h *BenchmarkHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/employees", h.Employees)
	app.Post("/benchmark", middleware.RateLimiter(1, 4*time.Second), h.Benchmark)
	app.Get("/dbcheck", h.DBCheck)
}

// Employees populates the benchmark selection control for a role name.
func (h *BenchmarkHandler) Employees(c *fiber.Ctx) error {
	role := c.Query("role")
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 50)

	options, pagination, err := h.uc.LookupEmployees(role, page, pageSize)
	if err != nil {
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: formErr.Message,
				Details: formErr.Errors,
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to fetch employees for role",
		}, err)
	}

	message := "Success get employees"
	if len(options) == 0 {
		message = "No employees found for role"
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    message,
		Data:       options,
		Pagination: pagination,
	})
}

func (h *BenchmarkHandler) Benchmark(c *fiber.Ctx) error {
	var req dto.BenchmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if err := h.validate.Struct(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "please fill in all fields and select up to 3 benchmark employees",
			Details: validationDetails(err),
		})
	}

	result, err := h.uc.RunBenchmark(c.UserContext(), req)
	if err != nil {
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: formErr.Message,
				Details: formErr.Errors,
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "benchmark run failed",
		}, err)
	}

	message := "Success run benchmark"
	if len(result.Ranking) == 0 {
		message = "No ranked talent found. Check benchmark logic or table data."
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: message,
		Data:    result,
	})
}

// DBCheck is the connectivity smoke test used before pointing the dashboard
// at a new environment.
func (h *BenchmarkHandler) DBCheck(c *fiber.Ctx) error {
	status, err := h.uc.CheckDatabase()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "database connection failed",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Database connection successful",
		Data:    status,
	})
}

func validationDetails(err error) map[string]string {
	details := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
	}
	return details
}
