package controllers

import (
	"net/http"

	"github.com/ccmarin14/TTS-Service/application/ports/inbound"
	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/ccmarin14/TTS-Service/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

type TTSController interface {
	SynthesizeByID(c *gin.Context)
	SynthesizeByName(c *gin.Context)
	SynthesizeByTraits(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type ttsController struct {
	logger      outbound.LoggerPort
	synthesizer inbound.SynthesizerPort
	catalog     inbound.VoiceCatalogPort
}

func NewTTSController(logger outbound.LoggerPort, synthesizer inbound.SynthesizerPort,
	catalog inbound.VoiceCatalogPort) TTSController {
	return &ttsController{
		logger:      logger,
		synthesizer: synthesizer,
		catalog:     catalog,
	}
}

func (t *ttsController) SynthesizeByID(c *gin.Context) {
	var request dto.SynthesizeByIDRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voice, err := t.catalog.ResolveByID(c.Request.Context(), request.Model)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	t.synthesize(c, domain.SynthesisRequest{Text: request.Text, ReadText: request.Read}, voice)
}

func (t *ttsController) SynthesizeByName(c *gin.Context) {
	var request dto.SynthesizeByNameRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voice, err := t.catalog.ResolveByName(c.Request.Context(), request.Model, request.Language)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	t.synthesize(c, domain.SynthesisRequest{Text: request.Text, ReadText: request.Read}, voice)
}

func (t *ttsController) SynthesizeByTraits(c *gin.Context) {
	var request dto.SynthesizeByTraitsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voice, err := t.catalog.ResolveByTraits(c.Request.Context(), request.Language,
		domain.Gender(request.Gender), domain.VoiceType(request.Type))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	t.synthesize(c, domain.SynthesisRequest{Text: request.Text, ReadText: request.Read}, voice)
}

func (t *ttsController) synthesize(c *gin.Context, request domain.SynthesisRequest, voice domain.VoiceProfile) {
	url, err := t.synthesizer.Synthesize(c.Request.Context(), request, voice)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SynthesizeResponse{FileURL: url})
}

func (t *ttsController) RegisterRoutes(g *gin.Engine) {
	g.POST("/tts", t.SynthesizeByID)
	g.POST("/tts/by-name", t.SynthesizeByName)
	g.POST("/tts/by-traits", t.SynthesizeByTraits)
}
