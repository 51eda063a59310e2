package motd

import (
	"fmt"
	"strconv"
	"strings"
)

// ServerStatus holds the fields of the server id string sent in an
// unconnected pong. Servers are only required to send the first four
// fields; when a trailing field is absent, the documented default below is
// filled in instead and Pong.StatusOK reports the substitution.
type ServerStatus struct {
	// Edition is the edition the server runs, usually MCPE or MCEE.
	Edition string `json:"edition"`
	// MOTD is the description shown in the server list.
	MOTD string `json:"motd"`
	// ProtocolVersion is the numeric network protocol version, such as 618.
	ProtocolVersion int16 `json:"protocol_version"`
	// VersionName is the game version the server runs, such as 1.20.40.
	VersionName string `json:"version_name"`
	// PlayerCount is the number of players online, or -1 if the server did
	// not send it.
	PlayerCount int32 `json:"player_count"`
	// MaxPlayerCount is the player capacity, or -1 if the server did not
	// send it.
	MaxPlayerCount int32 `json:"max_player_count"`
	// ServerID is an identifier unique to the server, or empty if the
	// server did not send it.
	ServerID string `json:"server_unique_id"`
	// LevelName is the name of the level the server hosts, or empty if the
	// server did not send it.
	LevelName string `json:"level_name"`
	// GameMode is the default game mode, Survival if the server did not
	// send it.
	GameMode string `json:"gamemode"`
	// GameModeNumeric is the default game mode as a number, 0 if the
	// server did not send it.
	GameModeNumeric uint8 `json:"gamemode_numeric"`
	// PortV4 and PortV6 are the game ports of the server, 19132 if the
	// server did not send them.
	PortV4 uint16 `json:"port_v4"`
	PortV6 uint16 `json:"port_v6"`
}

// minStatusFields is the number of leading server id string fields a server
// must always send: edition, MOTD, protocol version and version name.
const minStatusFields = 4

// statusField describes one position of the server id string: the name used
// in errors, how a token at that position is decoded into a ServerStatus
// and, for optional positions, the default applied when the token is
// absent. Fields whose default stands in for a value the server normally
// sends mark the parse as incomplete when substituted.
type statusField struct {
	name       string
	set        func(status *ServerStatus, token string) error
	fallback   func(status *ServerStatus)
	incomplete bool
}

// statusFields is the positional layout of the server id string. The first
// minStatusFields entries are required and carry no fallback.
var statusFields = []statusField{
	{name: "edition", set: func(status *ServerStatus, token string) error {
		status.Edition = token
		return nil
	}},
	{name: "motd", set: func(status *ServerStatus, token string) error {
		status.MOTD = token
		return nil
	}},
	{name: "protocol_version", set: func(status *ServerStatus, token string) error {
		v, err := strconv.ParseInt(token, 10, 16)
		if err != nil {
			return err
		}
		status.ProtocolVersion = int16(v)
		return nil
	}},
	{name: "version_name", set: func(status *ServerStatus, token string) error {
		status.VersionName = token
		return nil
	}},
	{name: "player_count", incomplete: true, set: func(status *ServerStatus, token string) error {
		v, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return err
		}
		status.PlayerCount = int32(v)
		return nil
	}, fallback: func(status *ServerStatus) {
		status.PlayerCount = -1
	}},
	{name: "max_player_count", incomplete: true, set: func(status *ServerStatus, token string) error {
		v, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return err
		}
		status.MaxPlayerCount = int32(v)
		return nil
	}, fallback: func(status *ServerStatus) {
		status.MaxPlayerCount = -1
	}},
	{name: "server_unique_id", set: func(status *ServerStatus, token string) error {
		status.ServerID = token
		return nil
	}, fallback: func(status *ServerStatus) {
		status.ServerID = ""
	}},
	{name: "level_name", set: func(status *ServerStatus, token string) error {
		status.LevelName = token
		return nil
	}, fallback: func(status *ServerStatus) {
		status.LevelName = ""
	}},
	{name: "gamemode", set: func(status *ServerStatus, token string) error {
		status.GameMode = token
		return nil
	}, fallback: func(status *ServerStatus) {
		status.GameMode = "Survival"
	}},
	{name: "gamemode_numeric", incomplete: true, set: func(status *ServerStatus, token string) error {
		v, err := strconv.ParseUint(token, 10, 8)
		if err != nil {
			return err
		}
		status.GameModeNumeric = uint8(v)
		return nil
	}, fallback: func(status *ServerStatus) {
		status.GameModeNumeric = 0
	}},
	{name: "port_v4", incomplete: true, set: func(status *ServerStatus, token string) error {
		v, err := strconv.ParseUint(token, 10, 16)
		if err != nil {
			return err
		}
		status.PortV4 = uint16(v)
		return nil
	}, fallback: func(status *ServerStatus) {
		status.PortV4 = 19132
	}},
	{name: "port_v6", incomplete: true, set: func(status *ServerStatus, token string) error {
		v, err := strconv.ParseUint(token, 10, 16)
		if err != nil {
			return err
		}
		status.PortV6 = uint16(v)
		return nil
	}, fallback: func(status *ServerStatus) {
		status.PortV6 = 19132
	}},
}

// parseServerStatus parses a raw server id string into a ServerStatus. The
// returned bool is true only if no absent optional field had a default
// substituted for it. A token that exists but does not parse as the type
// its position requires is always an error; tokens 4 and up may be absent.
func parseServerStatus(raw string) (ServerStatus, bool, error) {
	tokens := splitFields(raw)
	if len(tokens) < minStatusFields {
		return ServerStatus{}, false, fmt.Errorf("%w: got %v fields, need %v", ErrTooFewFields, len(tokens), minStatusFields)
	}
	var (
		status   ServerStatus
		complete = true
	)
	for i, field := range statusFields {
		if i >= len(tokens) {
			field.fallback(&status)
			if field.incomplete {
				complete = false
			}
			continue
		}
		if err := field.set(&status, tokens[i]); err != nil {
			return ServerStatus{}, false, &FieldError{Field: field.name, Value: tokens[i], Err: err}
		}
	}
	return status, complete, nil
}

// splitFields splits a server id string on semicolons, discarding empty
// tokens so that "a;;b" yields the same fields as "a;b".
func splitFields(raw string) []string {
	split := strings.Split(raw, ";")
	tokens := make([]string, 0, len(split))
	for _, token := range split {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
