package rotation_test

import (
	"testing"
	"time"

	"github.com/samueldeng/clist/rotation"
	"github.com/stretchr/testify/assert"
)

func TestCountStrategy(t *testing.T) {
	s := rotation.NewCountStrategy(3)
	assert.False(t, s.ShouldRotate(rotation.Information{RecordCount: 2}, time.Now()))
	assert.True(t, s.ShouldRotate(rotation.Information{RecordCount: 3}, time.Now()))
}

func TestTimeStrategy(t *testing.T) {
	s := rotation.NewTimeStrategy(time.Minute)
	start := time.Now()
	assert.False(t, s.ShouldRotate(rotation.Information{FirstWritten: start}, start.Add(30*time.Second)))
	assert.True(t, s.ShouldRotate(rotation.Information{FirstWritten: start}, start.Add(2*time.Minute)))
	assert.False(t, s.ShouldRotate(rotation.Information{}, start))
}

func TestComposite(t *testing.T) {
	s := rotation.NewComposite(rotation.NewCountStrategy(1000), rotation.NewTimeStrategy(time.Second))
	start := time.Now()
	assert.True(t, s.ShouldRotate(rotation.Information{RecordCount: 0, FirstWritten: start}, start.Add(2*time.Second)))
	assert.True(t, s.ShouldRotate(rotation.Information{RecordCount: 1000, FirstWritten: start}, start))
	assert.False(t, s.ShouldRotate(rotation.Information{RecordCount: 0, FirstWritten: start}, start))
}
