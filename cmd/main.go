package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/ccmarin14/TTS-Service/application/services"
	"github.com/ccmarin14/TTS-Service/config"
	"github.com/ccmarin14/TTS-Service/infrastructure/adapters"
	"github.com/ccmarin14/TTS-Service/infrastructure/gin_interface/controllers"
	"github.com/ccmarin14/TTS-Service/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx := context.Background()

	serverConfig := config.GetServerConfig()

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	postgresConfig, err := config.GetPostgresConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get postgres config")
	}

	playHTConfig, err := config.GetPlayHTConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get playht config")
	}

	voicemakerConfig, err := config.GetVoicemakerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get voicemaker config")
	}

	pollyConfig := config.GetPollyConfig()

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	awsConfig := aws.NewConfig().WithRegion(s3Config.Region)
	if s3Config.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(s3Config.Endpoint).WithS3ForcePathStyle(true)
	}
	s3Client := s3.New(sess, awsConfig)
	pollyClient := polly.New(sess)

	pool, err := pgxpool.New(ctx, postgresConfig.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to postgres")
	}
	defer pool.Close()

	store := adapters.NewPostgresStore(pool)
	if err := store.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate metadata schema")
	}

	cacheIndex, err := services.NewCacheIndex(ctx, store, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cache index")
	}

	scratchStore, err := adapters.NewScratchStore(serverConfig.ScratchDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scratch store")
	}

	artifactStore := adapters.NewS3ArtifactStore(s3Client, s3Config)

	registrar := services.NewArtifactRegistrar(zeroLogger, scratchStore, artifactStore, store, cacheIndex)

	playHTProvider := adapters.NewPlayHTProvider(
		adapters.NewContentFetcher(adapters.PlatformPlayHT, serverConfig.ProviderTimeout, zeroLogger), playHTConfig)
	voicemakerProvider := adapters.NewVoicemakerProvider(
		adapters.NewContentFetcher(adapters.PlatformVoicemaker, serverConfig.ProviderTimeout, zeroLogger), voicemakerConfig)
	pollyProvider := adapters.NewPollyProvider(pollyClient, pollyConfig, serverConfig.ProviderTimeout)

	providerRegistry := adapters.NewProviderRegistry(playHTProvider, voicemakerProvider, pollyProvider)

	synthesizer := services.NewSynthesisOrchestrator(zeroLogger, providerRegistry, cacheIndex, registrar)
	voiceCatalog := services.NewVoiceCatalog(zeroLogger, store)
	sampleImporter := services.NewSampleImporter(zeroLogger, workerPool, cacheIndex, registrar)

	ttsController := controllers.NewTTSController(zeroLogger, synthesizer, voiceCatalog)
	voicesController := controllers.NewVoicesController(zeroLogger, voiceCatalog, sampleImporter)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	var adminMiddleware []gin.HandlerFunc
	if serverConfig.JwksURL != "" {
		authHandler, err := middleware.NewAuthHandler(serverConfig.JwksURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		adminMiddleware = append(adminMiddleware, authHandler.AuthMiddleware())
	} else {
		zeroLogger.Warn("JWKS_URL not set, admin routes are unauthenticated")
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "cached_artifacts": cacheIndex.Len()})
	})

	ttsController.RegisterRoutes(router)
	voicesController.RegisterRoutes(router, adminMiddleware...)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
