package config

type InternalConfig struct {
	App        App
	JWT        JWT
	Telemetry  Telemetry
	Archive    Archive
	Assessment Assessment
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeout            int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	InternalAPIKey             string
}

type JWT struct {
	Secret string
}

type Telemetry struct {
	Queue string
}

type Archive struct {
	BucketName string
}

// Assessment tunes the scoring pipeline. Weights and thresholds are
// overridable per deployment but validated at engine construction.
type Assessment struct {
	StrictValidation             bool
	MinimumConfidence            float64
	IncludeSecondaryCodes        bool
	IncludeDifferentialDiagnosis bool
	ShareTokenExpiryInMinutes    int
	LowRiskThresholdMax          float64
	ModerateRiskThresholdMax     float64
	WeightPain                   float64
	WeightFunction               float64
	WeightSounds                 float64
	WeightAssociated             float64
	WeightHistory                float64
}
