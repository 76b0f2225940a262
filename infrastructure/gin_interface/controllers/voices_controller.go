package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/ccmarin14/TTS-Service/application/ports/inbound"
	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/ccmarin14/TTS-Service/infrastructure/adapters"
	"github.com/ccmarin14/TTS-Service/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type VoicesController interface {
	ListVoices(c *gin.Context)
	CreateVoice(c *gin.Context)
	ImportSamples(c *gin.Context)
	RegisterRoutes(g *gin.Engine, adminMiddleware ...gin.HandlerFunc)
}

type voicesController struct {
	logger   outbound.LoggerPort
	catalog  inbound.VoiceCatalogPort
	importer inbound.SampleImporterPort
}

func NewVoicesController(logger outbound.LoggerPort, catalog inbound.VoiceCatalogPort,
	importer inbound.SampleImporterPort) VoicesController {
	return &voicesController{
		logger:   logger,
		catalog:  catalog,
		importer: importer,
	}
}

func (v *voicesController) ListVoices(c *gin.Context) {
	voices, err := v.catalog.ListVoices(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, voices)
}

func (v *voicesController) CreateVoice(c *gin.Context) {
	var request dto.CreateVoiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := v.catalog.CreateVoice(c.Request.Context(), domain.NewVoiceProfile{
		Name:      request.VoiceName,
		Language:  request.Language,
		Gender:    domain.Gender(request.Gender),
		Type:      domain.VoiceType(request.Type),
		Platform:  request.Platform,
		VoiceCode: request.Model,
		Metadata:  request.Metadata,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateVoiceResponse{
		ID:        created.ID,
		VoiceName: created.Name,
		Language:  created.Language,
		Gender:    string(created.Gender),
		Type:      string(created.Type),
		Platform:  created.Platform,
		Model:     created.VoiceCode,
		Metadata:  created.Metadata,
	})
}

// ImportSamples accepts a multipart ZIP of pre-rendered mp3 samples for one
// voice profile and registers every entry not already cached.
func (v *voicesController) ImportSamples(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "voice id must be numeric"})
		return
	}

	voice, err := v.catalog.ResolveByID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := adapters.ExtractSampleArchive(data)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	report, err := v.importer.Import(c.Request.Context(), entries, voice)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (v *voicesController) RegisterRoutes(g *gin.Engine, adminMiddleware ...gin.HandlerFunc) {
	g.GET("/voices", v.ListVoices)

	admin := g.Group("/", adminMiddleware...)
	admin.POST("/voices", v.CreateVoice)
	admin.POST("/voices/:id/samples", v.ImportSamples)
}
