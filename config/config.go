package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"

	"github.com/spf13/viper"
)

type config struct {
	AppEnv   string
	Database struct {
		URL                    string `mapstructure:"url"`
		MaxConns               int32  `mapstructure:"max_conns"`
		MinConns               int32  `mapstructure:"min_conns"`
		MaxConnLifetimeMinutes int    `mapstructure:"max_conn_lifetime_minutes"`
	}
	Server struct {
		Address                string `mapstructure:"address"`
		ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
	}
	Static struct {
		Dir string `mapstructure:"dir"`
	}
	Log struct {
		Level string `mapstructure:"level"`
	}
	Client struct {
		APIURL         string `mapstructure:"api_url"`
		LogFile        string `mapstructure:"log_file"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	}
}

// C is config variable
var C config

// Application Environment name
const (
	Development = "development"
	Test        = "test"
	E2E         = "e2e"
	Staging     = "staging"
	Production  = "production"
)

// ReadConfigOption is a config option
type ReadConfigOption struct {
	AppEnv string
}

// ValidateOption lists the settings a command cannot start without.
type ValidateOption struct {
	Database  bool
	StaticDir bool
}

// ReadConfig configures config file
func ReadConfig(option ReadConfigOption) {
	Config := &C

	e := appEnv(option)

	if e == Test {
		setTest()
	} else if e == E2E {
		setE2E()
	} else if e == Staging {
		setStaging()
	} else if e == Development {
		setDev()
	} else {
		setProd()
	}

	viper.SetConfigType("yml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// No defaults: both must come from the environment.
	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("static.dir", "STATIC_DIR")

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println(err)
		log.Fatalln(err)
	}

	if err := viper.Unmarshal(&Config); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	C.AppEnv = e

	if e == Development {
		spew.Dump(C)
	}
}

// Validate returns every required setting that is missing.
func Validate(option ValidateOption) error {
	var result *multierror.Error

	if option.Database && strings.TrimSpace(C.Database.URL) == "" {
		result = multierror.Append(result, errors.New("DATABASE_URL is required"))
	}
	if option.StaticDir {
		if strings.TrimSpace(C.Static.Dir) == "" {
			result = multierror.Append(result, errors.New("STATIC_DIR is required"))
		} else if fi, err := os.Stat(C.Static.Dir); err != nil || !fi.IsDir() {
			result = multierror.Append(result, fmt.Errorf("STATIC_DIR %q is not a directory", C.Static.Dir))
		}
	}

	return result.ErrorOrNil()
}

func appEnv(option ReadConfigOption) string {
	if option.AppEnv != "" {
		return option.AppEnv
	}
	if os.Getenv("APP_ENV") != "" {
		return os.Getenv("APP_ENV")
	}

	return Development
}

func rootDir() string {
	_, b, _, _ := runtime.Caller(0)
	d := path.Join(path.Dir(b))
	return filepath.Dir(d)
}

func setDev() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config")
}

func setTest() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.test")
}

func setE2E() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.e2e")
}

func setStaging() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.staging")
}

func setProd() {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName("config.production")
}
