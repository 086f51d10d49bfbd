// Package config loads the room server's HCL configuration file, grounded
// on the teacher's internal/server.ServerConfig/LoadServerConfig: a single
// top-level server block plus repeatable labeled blocks, decoded with
// gohcl and defaulted/validated by hand afterward.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ServerConfig is the complete room server configuration.
type ServerConfig struct {
	Server ServerSettings `hcl:"server,block"`
	Rooms  []RoomConfig   `hcl:"room,block"`
	Bots   []BotConfig    `hcl:"bot,block"`
}

// ServerSettings holds the process-wide listen address and log settings.
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// RoomConfig pre-declares a named room the server should create at
// startup rather than lazily on first Connect.
type RoomConfig struct {
	Name      string `hcl:"name,label"`
	Mode      string `hcl:"mode,optional"`
	AutoStart bool   `hcl:"auto_start,optional"`
}

// BotConfig names a bot strategy available to fill empty seats, and which
// pre-declared rooms it should be attached to.
type BotConfig struct {
	Name     string   `hcl:"name,label"`
	Strategy string   `hcl:"strategy"`
	Rooms    []string `hcl:"rooms,optional"`
}

// DefaultServerConfig is used when no config file is present.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
			LogFile:  "guandan-server.log",
		},
		Rooms: []RoomConfig{
			{Name: "main", Mode: "Normal", AutoStart: true},
		},
		Bots: []BotConfig{
			{Name: "heuristic", Strategy: "heuristic", Rooms: []string{"main"}},
		},
	}
}

// LoadServerConfig reads and decodes filename, falling back to
// DefaultServerConfig if it does not exist.
func LoadServerConfig(filename string) (*ServerConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultServerConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ServerConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Server.LogFile == "" {
		config.Server.LogFile = "guandan-server.log"
	}

	for i := range config.Rooms {
		if config.Rooms[i].Mode == "" {
			config.Rooms[i].Mode = "Normal"
		}
	}

	for i := range config.Bots {
		if config.Bots[i].Strategy == "" {
			config.Bots[i].Strategy = "heuristic"
		}
		if len(config.Bots[i].Rooms) == 0 {
			for _, room := range config.Rooms {
				config.Bots[i].Rooms = append(config.Bots[i].Rooms, room.Name)
			}
		}
	}

	return &config, nil
}

// Validate checks the decoded configuration for values the server cannot
// run with.
func (c *ServerConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	validModes := map[string]bool{"Normal": true, "Skill": true}
	for _, room := range c.Rooms {
		if !validModes[room.Mode] {
			return fmt.Errorf("room %s: invalid mode %s", room.Name, room.Mode)
		}
	}

	validStrategies := map[string]bool{"heuristic": true, "random": true}
	for _, b := range c.Bots {
		if !validStrategies[b.Strategy] {
			return fmt.Errorf("bot %s: invalid strategy %s", b.Name, b.Strategy)
		}
	}

	return nil
}

// Addr returns the server's listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// RoomByName returns a pre-declared room's configuration by name.
func (c *ServerConfig) RoomByName(name string) *RoomConfig {
	for _, room := range c.Rooms {
		if room.Name == name {
			return &room
		}
	}
	return nil
}

// BotsForRoom returns every bot configured to attach to the named room.
func (c *ServerConfig) BotsForRoom(roomName string) []BotConfig {
	var bots []BotConfig
	for _, b := range c.Bots {
		for _, room := range b.Rooms {
			if room == roomName {
				bots = append(bots, b)
				break
			}
		}
	}
	return bots
}
