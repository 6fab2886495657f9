package nakama

import (
	"fmt"
	"math"

	"kartrace/internal/domain"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// encodePayload marshals a loosely typed message into a binary google.protobuf.Struct.
func encodePayload(fields map[string]interface{}) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build payload: %w", err)
	}
	return proto.Marshal(s)
}

// decodePayload parses a binary google.protobuf.Struct. An empty payload is an empty struct.
func decodePayload(data []byte) (*structpb.Struct, error) {
	s := &structpb.Struct{}
	if len(data) == 0 {
		return s, nil
	}
	if err := proto.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return s, nil
}

// indexField returns an integral numeric field of s that lies in [0, limit).
func indexField(s *structpb.Struct, key string, limit int) (int, bool) {
	n, ok := numberField(s, key)
	if !ok || n != math.Trunc(n) || n < 0 || n >= float64(limit) {
		return 0, false
	}
	return int(n), true
}

// numberField returns a numeric field of s.
func numberField(s *structpb.Struct, key string) (float64, bool) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, false
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false
	}
	return n.NumberValue, true
}

func standingToMap(p domain.ProgressState, totalLaps int) map[string]interface{} {
	return map[string]interface{}{
		"user_id":      string(p.ID),
		"display_name": p.DisplayName,
		"position":     p.CurrentPosition,
		"lap":          domain.DisplayLap(&p, totalLaps),
		"checkpoint":   p.LastCheckpointHit,
		"finished":     p.Finished,
		"total_time":   p.TotalRaceTime,
		"best_lap":     p.BestLapTime,
	}
}

func standingsToList(standings []domain.ProgressState, totalLaps int) []interface{} {
	out := make([]interface{}, 0, len(standings))
	for _, p := range standings {
		out = append(out, standingToMap(p, totalLaps))
	}
	return out
}

// marshalLabel renders the match label as compact JSON for Nakama's label index.
func marshalLabel(open bool, phase domain.Phase, racers int) (string, error) {
	s, err := structpb.NewStruct(map[string]interface{}{
		labelKeyOpen:   open,
		labelKeyGame:   GameName,
		labelKeyPhase:  string(phase),
		labelKeyRacers: racers,
	})
	if err != nil {
		return "", err
	}
	b, err := protojson.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
