package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_Now(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	clock := NewSystemClock(loc)

	before := time.Now()
	now := clock.Now()

	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, before, now, time.Minute)
}

func TestSystemClock_DefaultsToLocal(t *testing.T) {
	assert.Equal(t, time.Local, NewSystemClock(nil).Now().Location())
}

func TestSystemClock_LoadLocation(t *testing.T) {
	clock := NewSystemClock(time.UTC)

	loc, err := clock.LoadLocation("UTC")
	assert.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = clock.LoadLocation("Not/A_Real_Timezone")
	assert.Error(t, err)
}
