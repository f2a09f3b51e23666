package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/inspecthq/ferrite/internal/config"
	"github.com/inspecthq/ferrite/internal/core"
	"github.com/inspecthq/ferrite/internal/core/model"
	"github.com/inspecthq/ferrite/internal/driver"
	"github.com/inspecthq/ferrite/internal/llm"
	"github.com/inspecthq/ferrite/internal/store"
)

// InspectionService is the query surface the HTTP layer adapts.
type InspectionService interface {
	ListEquipment(ctx context.Context) ([]model.Equipment, error)
	ListFluids(ctx context.Context) ([]model.Fluid, error)
	RelevantMechanisms(ctx context.Context, equipmentID, fluidID string) ([]model.Mechanism, error)
	RelevantScenarios(ctx context.Context, deteriorationIDs []string) ([]model.Scenario, error)
}

type Server struct {
	Inspection InspectionService
}

func New(service InspectionService) *Server {
	return &Server{Inspection: service}
}

// NewServer wires config, store and LLM client into a ready server.
func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	d, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Memgraph: %v", err)
	}

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	return New(core.NewInspection(store.New(d), llmClient, cfg))
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/equipment", s.GetEquipment)
	r.GET("/fluids", s.GetFluids)
	r.GET("/deterioration", s.GetDeterioration)
	r.GET("/failure_scenarios", s.GetFailureScenarios)

	return r
}

func (s *Server) GetEquipment(c *gin.Context) {
	equipment, err := s.Inspection.ListEquipment(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch equipment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error fetching equipment data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"equipment": equipment})
}

func (s *Server) GetFluids(c *gin.Context) {
	fluids, err := s.Inspection.ListFluids(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch fluids: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error fetching fluids data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fluids": fluids})
}

// GetDeterioration returns the deterioration catalog, filtered to the
// relevant subset when equipment_id and/or fluid_id are given.
func (s *Server) GetDeterioration(c *gin.Context) {
	equipmentID := c.Query("equipment_id")
	fluidID := c.Query("fluid_id")

	mechanisms, err := s.Inspection.RelevantMechanisms(c.Request.Context(), equipmentID, fluidID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Failed to fetch deterioration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error fetching deterioration data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deterioration": mechanisms})
}

// GetFailureScenarios takes deterioration_ids as a comma-separated list.
func (s *Server) GetFailureScenarios(c *gin.Context) {
	raw := c.Query("deterioration_ids")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "deterioration_ids query parameter is required"})
		return
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	scenarios, err := s.Inspection.RelevantScenarios(c.Request.Context(), ids)
	if err != nil {
		log.Printf("Failed to analyze failure scenarios: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Error analyzing failure scenarios: %v", err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"failure_scenarios": scenarios})
}
