package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskhub-dev/taskhub/db"
	"github.com/taskhub-dev/taskhub/internal/models"
	"gorm.io/gorm"
)

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department"`
}

func ListEmployees(ctx *gin.Context) {
	employees := make([]models.Employee, 0)

	if err := db.DB.Order("created_at DESC, id DESC").Find(&employees).Error; err != nil {
		log.Printf("Failed to list employees: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employees"})
		return
	}

	ctx.JSON(http.StatusOK, employees)
}

func CreateEmployee(ctx *gin.Context) {
	var body CreateEmployeeRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	if body.Department == "" {
		body.Department = "General"
	}

	var existing models.Employee

	err := db.DB.Where("email = ?", body.Email).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Employee with that email already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing employee: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	employee := models.Employee{
		Name:       body.Name,
		Email:      body.Email,
		Department: body.Department,
	}

	if err := db.DB.Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Employee with that email already exists"})
			return
		}
		log.Printf("Failed to create employee: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	ctx.JSON(http.StatusCreated, employee)
}

func GetEmployee(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var employee models.Employee

	if err := db.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			log.Printf("Failed to fetch employee %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employee"})
		}
		return
	}

	ctx.JSON(http.StatusOK, employee)
}
