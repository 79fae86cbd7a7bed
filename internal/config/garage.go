package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// GarageProfile is the shop identity printed on every bill. It is
// display data only; no business logic depends on it.
type GarageProfile struct {
	Name         string   `mapstructure:"name" json:"name"`
	AddressLines []string `mapstructure:"addressLines" json:"address_lines"`
	GSTIN        string   `mapstructure:"gstin" json:"gstin"`
	Phone        string   `mapstructure:"phone" json:"phone"`
	Email        string   `mapstructure:"email" json:"email"`
	LogoPath     string   `mapstructure:"logoPath" json:"logo_path"`
}

func DefaultGarageProfile() GarageProfile {
	return GarageProfile{
		Name:         "GarageDesk Motors",
		AddressLines: []string{"Workshop Road"},
		Phone:        "",
		Email:        "",
	}
}

type GarageProfileHolder struct {
	current atomic.Value // holds GarageProfile
}

// NewGarageProfileHolder reads garage.yml and keeps the profile hot-reloadable
// so address or GSTIN edits do not require a restart.
func NewGarageProfileHolder() (*GarageProfileHolder, error) {
	v := viper.New()

	v.SetConfigName("garage")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/garagedesk")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GARAGEDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultGarageProfile()
		v.SetDefault("garage.name", defaults.Name)
		v.SetDefault("garage.addressLines", defaults.AddressLines)
	}

	var profile GarageProfile
	if err := v.UnmarshalKey("garage", &profile); err != nil {
		return nil, err
	}
	if err := validateGarageProfile(profile); err != nil {
		return nil, err
	}

	holder := &GarageProfileHolder{}
	holder.current.Store(profile)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated GarageProfile
		if err := v.UnmarshalKey("garage", &updated); err != nil {
			log.Printf("[garage-config] reload failed: %v", err)
			return
		}
		if err := validateGarageProfile(updated); err != nil {
			log.Printf("[garage-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[garage-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticGarageProfileHolder wraps a fixed profile, bypassing the
// file watcher. Meant for tests.
func NewStaticGarageProfileHolder(profile GarageProfile) *GarageProfileHolder {
	holder := &GarageProfileHolder{}
	holder.current.Store(profile)
	return holder
}

func (h *GarageProfileHolder) Get() GarageProfile {
	return h.current.Load().(GarageProfile)
}

func validateGarageProfile(profile GarageProfile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return errors.New("garage.name cannot be empty")
	}
	return nil
}
