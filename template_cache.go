package osm2lanes

import (
	"encoding/binary"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// TemplateKey identifies distinct lane template
type TemplateKey string

const (
	// Three float32, three uint16 and one byte per lane
	laneKeySize = 3*4 + 3*2 + 1
)

var (
	templateNamespace = uuid.MustParse("6f2b6a3e-1c1d-4f57-9a7c-2f0e0c4b9d51")
)

// TemplateKeyOf returns stable identifier of lane template.
// Templates consisting of identical lanes share the same key wherever they come from.
func TemplateKeyOf(lanes []Lane) TemplateKey {
	return TemplateKey(uuid.NewSHA1(templateNamespace, templateKeyData(lanes)).String())
}

// templateKeyData writes lanes in fixed-size binary form.
// Floats are taken bit by bit, so NaN and infinite values still make distinct input.
func templateKeyData(lanes []Lane) []byte {
	data := make([]byte, 0, 4+len(lanes)*laneKeySize)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(lanes)))
	for _, lane := range lanes {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(lane.Position))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(lane.Width))
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(lane.VerticalOffset))
		data = binary.LittleEndian.AppendUint16(data, uint16(lane.Direction))
		data = binary.LittleEndian.AppendUint16(data, uint16(lane.LaneType))
		data = binary.LittleEndian.AppendUint16(data, uint16(lane.VehicleType))
		if lane.AllowConnect {
			data = append(data, 1)
		} else {
			data = append(data, 0)
		}
	}
	return data
}

// TemplateCache memoizes classification per template key.
// Concurrent first access to the same key runs computation at most once,
// afterwards the shared result is read without waiting on other keys.
type TemplateCache struct {
	flights singleflight.Group
	results sync.Map // TemplateKey -> *LaneClassification
}

// NewTemplateCache returns empty cache
func NewTemplateCache() *TemplateCache {
	return &TemplateCache{}
}

// Get returns memoized classification for key
func (cache *TemplateCache) Get(key TemplateKey) (*LaneClassification, bool) {
	value, ok := cache.results.Load(key)
	if !ok {
		return nil, false
	}
	return value.(*LaneClassification), true
}

// GetOrCompute returns memoized classification for key or evaluates it with compute
func (cache *TemplateCache) GetOrCompute(key TemplateKey, compute func() *LaneClassification) *LaneClassification {
	if cls, ok := cache.Get(key); ok {
		return cls
	}
	value, _, _ := cache.flights.Do(string(key), func() (interface{}, error) {
		// Flight for the same key could have finished right before this one started
		if cls, ok := cache.Get(key); ok {
			return cls, nil
		}
		cls := compute()
		cache.results.Store(key, cls)
		return cls, nil
	})
	return value.(*LaneClassification)
}

// Classify returns classification of given template evaluating it once per distinct template
func (cache *TemplateCache) Classify(lanes []Lane) (TemplateKey, *LaneClassification) {
	key := TemplateKeyOf(lanes)
	return key, cache.GetOrCompute(key, func() *LaneClassification {
		return Classify(lanes)
	})
}

// Len returns number of memoized templates
func (cache *TemplateCache) Len() int {
	total := 0
	cache.results.Range(func(_, _ interface{}) bool {
		total++
		return true
	})
	return total
}

// Keys returns memoized template keys in lexicographical order
func (cache *TemplateCache) Keys() []TemplateKey {
	keys := []TemplateKey{}
	cache.results.Range(func(key, _ interface{}) bool {
		keys = append(keys, key.(TemplateKey))
		return true
	})
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
