package main

import "sync"

type Config struct {
	BoardWidth    int `json:"board_width"`
	BoardHeight   int `json:"board_height"`
	TurnTimeoutMs int `json:"turn_timeout_ms"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		BoardWidth:  15,
		BoardHeight: 15,

		// 0 disables the turn clock entirely.
		TurnTimeoutMs: 0,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
