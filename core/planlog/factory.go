package planlog

import (
	"errors"

	"github.com/gebusstephane-bit/fleet-master-pro-sub000/core/factory"
)

var storeRegistry = factory.NewRegistry[Store]()

// StoreConf is the configuration shared by the built-in stores.
type StoreConf struct {
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

func decodeConf(conf map[string]any) (StoreConf, error) {
	var c StoreConf
	if err := factory.Decode(conf, &c); err != nil {
		return c, err
	}
	if c.Path == "" {
		return c, errors.New("path is required")
	}
	return c, nil
}

func init() {
	_ = storeRegistry.Register("jsonl", func(conf map[string]any) (Store, error) {
		c, err := decodeConf(conf)
		if err != nil {
			return nil, err
		}
		return NewJSONLStore(c.Path)
	})
	_ = storeRegistry.Register("jsonl_rotating", func(conf map[string]any) (Store, error) {
		c, err := decodeConf(conf)
		if err != nil {
			return nil, err
		}
		if c.MaxSizeMB == 0 {
			c.MaxSizeMB = 10
		}
		return NewRotatingJSONLStore(c.Path, c.MaxSizeMB, c.MaxBackups, c.MaxAgeDays)
	})
	_ = storeRegistry.Register("sqlite", func(conf map[string]any) (Store, error) {
		c, err := decodeConf(conf)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(c.Path)
	})
}

// NewStore builds the store described by cfg.
func NewStore(cfg factory.ModuleConfig) (Store, error) {
	return storeRegistry.Create(cfg)
}

// StoreTypes lists the registered store types.
func StoreTypes() []string { return storeRegistry.Names() }
