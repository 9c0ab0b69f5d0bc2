package models

type Config struct {
	Debug          bool   `yaml:"debug" envconfig:"IGV_DEBUG"`
	SemVer         string `yaml:"semVer" envconfig:"IGV_SEMVER"`
	ServiceContact string `yaml:"serviceContact" envconfig:"IGV_SERVICE_CONTACT"`

	Api struct {
		Url                 string `yaml:"url"`
		Port                string `yaml:"port" envconfig:"IGV_API_INTERNAL_PORT" default:"5000"`
		SessionTtlHours     int    `yaml:"sessionTtlHours" envconfig:"IGV_API_SESSION_TTL_HOURS" default:"24"`
		SanitationTime      string `yaml:"sanitationTime" envconfig:"IGV_API_SANITATION_TIME" default:"04:00:00"`
		SerializationPolicy string `yaml:"serializationPolicy" envconfig:"IGV_API_SERIALIZATION_POLICY" default:"strict"`
		MessageQueueSize    int    `yaml:"messageQueueSize" envconfig:"IGV_API_MESSAGE_QUEUE_SIZE" default:"100"`
	} `yaml:"api"`

	Elasticsearch struct {
		Url      string `yaml:"url" envconfig:"IGV_ES_URL"`
		Username string `yaml:"username" envconfig:"IGV_ES_USERNAME"`
		Password string `yaml:"password" envconfig:"IGV_ES_PASSWORD"`
		Enabled  bool   `yaml:"enabled" envconfig:"IGV_ES_ENABLED" default:"true"`
	} `yaml:"elasticsearch"`

	AuthX struct {
		IsAuthorizationEnabled bool   `yaml:"isAuthorizationEnabled" envconfig:"IGV_AUTHZ_ENABLED"`
		AuthorizationUrl       string `yaml:"authorizationUrl" envconfig:"IGV_AUTHZ_URL"`
	} `yaml:"authX"`
}
