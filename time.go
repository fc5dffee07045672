package ordkey

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// timeCodec is the Codec for time.Time.
//
// It's lossy: it preserves the UTC instant and the timezone's numeric
// offset, but not the zone's name, so Daylight Saving Time transitions
// aren't reconstructed. Zone abbreviations are locale- and OS-database
// dependent and time.Time.Zone can return names time.LoadLocation can't
// parse back, so carrying only the numeric offset keeps decode total.
//
// Order is UTC instant first, then offset: two values for the same instant
// in different zones compare equal on the instant and break the tie on
// offset, lower offset first. time.Time.Before/After/Compare order by
// instant alone and report such values as equal.
//
// A time.Time is encoded as:
//
//	int64  seconds since epoch (UTC)
//	uint32 nanoseconds within the second
//	int32  timezone offset in seconds east of UTC
type timeCodec struct{}

var stdTime Codec[time.Time] = timeCodec{}

// Time returns a Codec for time.Time. This Codec does not require a
// terminator.
func Time() Codec[time.Time] { return stdTime }

// zoneOffsetNames memoizes the FixedZone name for a given offset, the one
// piece of shared mutable state in this package: formatOffset does a
// handful of divisions and an allocation, and the same handful of offsets
// (UTC, and whatever local zones a process actually sees) recur across
// every decoded value. Non-evicting: the set of distinct offsets a
// process ever decodes is small and bounded by the number of real-world
// time zones, not by the number of values decoded.
type zoneOffsetNames struct {
	lock  sync.RWMutex
	names map[int32]string
}

func (z *zoneOffsetNames) name(offset int32) string {
	z.lock.RLock()
	name, ok := z.names[offset]
	z.lock.RUnlock()
	if ok {
		return name
	}
	name = formatOffset(offset)
	z.lock.Lock()
	z.names[offset] = name
	z.lock.Unlock()
	return name
}

var zoneNameCache = &zoneOffsetNames{names: map[int32]string{}}

func formatOffset(seconds int32) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	minutes := seconds / 60
	hours := minutes / 60
	return fmt.Sprintf("%c%02d:%02d:%02d", sign, hours, minutes%60, seconds%60)
}

func splitTime(value time.Time) (int64, uint32, int32) {
	utc := value.UTC()
	_, offset := value.Zone()
	return utc.Unix(), uint32(utc.Nanosecond()), int32(offset)
}

func buildTime(seconds int64, nanos uint32, offset int32) time.Time {
	loc := time.FixedZone(zoneNameCache.name(offset), int(offset))
	return time.Unix(seconds, int64(nanos)).In(loc)
}

func (timeCodec) Encode(sink io.Writer, value time.Time) error {
	seconds, nanos, offset := splitTime(value)
	if err := stdInt64.Encode(sink, seconds); err != nil {
		return err
	}
	if err := stdUint32.Encode(sink, nanos); err != nil {
		return err
	}
	return stdInt32.Encode(sink, offset)
}

func (timeCodec) Decode(source io.Reader) (time.Time, error) {
	var zero time.Time
	seconds, err := stdInt64.Decode(source)
	if err != nil {
		return zero, err
	}
	nanos, err := stdUint32.Decode(source)
	if err != nil {
		return zero, err
	}
	offset, err := stdInt32.Decode(source)
	if err != nil {
		return zero, err
	}
	return buildTime(seconds, nanos, offset), nil
}

func (timeCodec) RequiresTerminator() bool { return false }
