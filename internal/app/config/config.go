package config

import (
	"tmdscreen-service/internal/app/services/core/engine"
	"tmdscreen-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "tmdscreen"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			InternalAPIKey:             utils.GetEnvString("APP_INTERNAL_API_KEY", ""),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Telemetry: Telemetry{
			Queue: utils.GetEnvString("APP_RABBITMQ_TELEMETRY_QUEUE", "assessment-telemetry"),
		},
		Archive: Archive{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "assessment-reports"),
		},
		Assessment: Assessment{
			StrictValidation:             utils.GetEnvBool("ASSESSMENT_STRICT_VALIDATION", true),
			MinimumConfidence:            utils.GetEnvFloat("ASSESSMENT_MINIMUM_CONFIDENCE", 40),
			IncludeSecondaryCodes:        utils.GetEnvBool("ASSESSMENT_INCLUDE_SECONDARY_CODES", true),
			IncludeDifferentialDiagnosis: utils.GetEnvBool("ASSESSMENT_INCLUDE_DIFFERENTIAL", true),
			ShareTokenExpiryInMinutes:    utils.GetEnvInt("ASSESSMENT_SHARE_TOKEN_EXPIRY_IN_MINUTES", 4320),
			LowRiskThresholdMax:          utils.GetEnvFloat("ASSESSMENT_LOW_RISK_THRESHOLD_MAX", 30),
			ModerateRiskThresholdMax:     utils.GetEnvFloat("ASSESSMENT_MODERATE_RISK_THRESHOLD_MAX", 65),
			WeightPain:                   utils.GetEnvFloat("ASSESSMENT_WEIGHT_PAIN", 0.30),
			WeightFunction:               utils.GetEnvFloat("ASSESSMENT_WEIGHT_FUNCTION", 0.25),
			WeightSounds:                 utils.GetEnvFloat("ASSESSMENT_WEIGHT_SOUNDS", 0.20),
			WeightAssociated:             utils.GetEnvFloat("ASSESSMENT_WEIGHT_ASSOCIATED", 0.15),
			WeightHistory:                utils.GetEnvFloat("ASSESSMENT_WEIGHT_HISTORY", 0.10),
		},
	}
}

// BuildScoringConfig projects the env-backed assessment settings onto the
// engine configuration. NewEngine rejects inconsistent values.
func (c *InternalConfig) BuildScoringConfig() engine.ScoringConfig {
	cfg := engine.DefaultScoringConfig()
	cfg.Weights = engine.Weights{
		engine.CategoryPain:       c.Assessment.WeightPain,
		engine.CategoryFunction:   c.Assessment.WeightFunction,
		engine.CategorySounds:     c.Assessment.WeightSounds,
		engine.CategoryAssociated: c.Assessment.WeightAssociated,
		engine.CategoryHistory:    c.Assessment.WeightHistory,
	}
	cfg.Risk = engine.RiskThresholds{
		LowMax:      c.Assessment.LowRiskThresholdMax,
		ModerateMax: c.Assessment.ModerateRiskThresholdMax,
	}
	return cfg
}

func (c *InternalConfig) BuildEngineOptions() engine.Options {
	return engine.Options{
		StrictValidation:             c.Assessment.StrictValidation,
		MinimumConfidence:            c.Assessment.MinimumConfidence,
		IncludeSecondaryCodes:        c.Assessment.IncludeSecondaryCodes,
		IncludeDifferentialDiagnosis: c.Assessment.IncludeDifferentialDiagnosis,
	}
}
