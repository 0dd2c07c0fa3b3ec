// Package config loads application configuration from environment variables
// into annotated structs, parsing each struct type at most once per process.
//
// It wraps github.com/joho/godotenv for optional .env loading and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type BrandConfig struct {
//	    StoreName string `env:"BRAND_STORE_NAME,required"`
//	    Primary   string `env:"BRAND_PRIMARY_COLOR" envDefault:"#2563eb"`
//	}
//
//	var brand BrandConfig
//	if err := config.Load(&brand); err != nil {
//	    log.Fatal(err)
//	}
//
// Parsed structs are cached by type name, so repeated Load calls across
// packages return the same values without re-reading the environment.
// Failures surface as ErrParsingConfig joined with the underlying parse
// error; use MustLoad when the process cannot run without the values.
package config
