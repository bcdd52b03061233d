package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/profilekit/internal/domain/entities"
	"github.com/reglet-dev/profilekit/internal/domain/values"
)

func TestCurrentProfileHolder_GetSet(t *testing.T) {
	holder := NewCurrentProfileHolder(NewTestLogger())
	assert.Nil(t, holder.Get())

	profile1 := defaultProfile(t)
	holder.Set(profile1)
	assert.True(t, profile1.Equals(holder.Get()))

	holder.Set(nil)
	assert.Nil(t, holder.Get())
}

func TestCurrentProfileHolder_NilLoggerUsesDefault(t *testing.T) {
	holder := NewCurrentProfileHolder(nil)
	holder.Set(defaultProfile(t))
	assert.NotNil(t, holder.Get())
}

func TestCurrentProfileHolder_NotifiesOldAndNew(t *testing.T) {
	holder := NewCurrentProfileHolder(NewTestLogger())
	profile1 := defaultProfile(t)
	profile2 := mostlyNullsProfile(t)

	var changes []entities.ProfileChange
	holder.Subscribe(func(c entities.ProfileChange) {
		changes = append(changes, c)
	})

	holder.Set(profile1)
	holder.Set(profile2)
	holder.Set(nil)

	require.Len(t, changes, 3)
	assert.Nil(t, changes[0].Old)
	assert.Same(t, profile1, changes[0].New)
	assert.Same(t, profile1, changes[1].Old)
	assert.Same(t, profile2, changes[1].New)
	assert.Same(t, profile2, changes[2].Old)
	assert.Nil(t, changes[2].New)
}

func TestCurrentProfileHolder_AlwaysNotifies(t *testing.T) {
	holder := NewCurrentProfileHolder(NewTestLogger())

	var changes []entities.ProfileChange
	holder.Subscribe(func(c entities.ProfileChange) {
		changes = append(changes, c)
	})

	holder.Set(defaultProfile(t))
	holder.Set(defaultProfile(t))
	holder.Set(nil)
	holder.Set(nil)

	require.Len(t, changes, 4)
	assert.True(t, changes[0].Changed())
	assert.False(t, changes[1].Changed())
	assert.True(t, changes[2].Changed())
	assert.False(t, changes[3].Changed())
}

func TestCurrentProfileHolder_ObserverSeesNewValue(t *testing.T) {
	holder := NewCurrentProfileHolder(NewTestLogger())
	profile1 := defaultProfile(t)

	var seen *entities.Profile
	holder.Subscribe(func(entities.ProfileChange) {
		seen = holder.Get()
	})

	holder.Set(profile1)
	assert.Same(t, profile1, seen)
}

func TestCurrentProfileHolder_SubscriptionOrder(t *testing.T) {
	holder := NewCurrentProfileHolder(NewTestLogger())

	var order []int
	for i := 0; i < 3; i++ {
		holder.Subscribe(func(entities.ProfileChange) {
			order = append(order, i)
		})
	}

	holder.Set(defaultProfile(t))
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestCurrentProfileHolder_Unsubscribe(t *testing.T) {
	holder := NewCurrentProfileHolder(NewTestLogger())

	var calls int
	id := holder.Subscribe(func(entities.ProfileChange) { calls++ })

	holder.Set(defaultProfile(t))
	assert.True(t, holder.Unsubscribe(id))
	holder.Set(nil)

	assert.Equal(t, 1, calls)
	assert.False(t, holder.Unsubscribe(id))
	assert.False(t, holder.Unsubscribe(values.NewSubscriptionID()))
}

func TestCurrentProfileHolder_ObserverPanicIsIsolated(t *testing.T) {
	holder := NewCurrentProfileHolder(NewTestLogger())

	var after int
	holder.Subscribe(func(entities.ProfileChange) { panic("boom") })
	holder.Subscribe(func(entities.ProfileChange) { after++ })

	assert.NotPanics(t, func() {
		holder.Set(defaultProfile(t))
	})
	assert.Equal(t, 1, after)
	assert.NotNil(t, holder.Get())
}

func TestCurrentProfileHolder_ObserverMayUnsubscribeItself(t *testing.T) {
	holder := NewCurrentProfileHolder(NewTestLogger())

	var id values.SubscriptionID
	var calls int
	id = holder.Subscribe(func(entities.ProfileChange) {
		calls++
		holder.Unsubscribe(id)
	})

	holder.Set(defaultProfile(t))
	holder.Set(nil)
	assert.Equal(t, 1, calls)
}

func TestCurrentProfileHolder_Concurrent(t *testing.T) {
	holder := NewCurrentProfileHolder(NewTestLogger())
	profile1 := defaultProfile(t)
	profile2 := mostlyNullsProfile(t)

	var mu sync.Mutex
	var notified int
	holder.Subscribe(func(entities.ProfileChange) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	const writers, readers, iterations = 4, 4, 200
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				switch i % 3 {
				case 0:
					holder.Set(profile1)
				case 1:
					holder.Set(profile2)
				default:
					holder.Set(nil)
				}
			}
		}()
	}
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				got := holder.Get()
				if got != nil && got != profile1 && got != profile2 {
					t.Errorf("unexpected profile %v", got.ID())
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*iterations, notified)
}
