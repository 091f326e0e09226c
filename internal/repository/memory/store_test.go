package memory

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"users-insights/internal/entities"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// taggedUsers builds a dataset whose every record carries the tag, so a reader can
// detect a torn or reclaimed view.
func taggedUsers(tag string, n int) []entities.User {
	users := make([]entities.User, n)
	for i := range users {
		users[i] = entities.User{
			ID:      fmt.Sprintf("%s-%d", tag, i),
			Country: tag,
			Team:    entities.UserTeam{Name: tag},
			Logs:    []entities.LoginLog{{Date: tag, Action: "login"}},
		}
	}
	return users
}

func requireTagged(t testing.TB, users []entities.User, n int) {
	t.Helper()
	require.Len(t, users, n)
	tag := users[0].Country
	for _, u := range users {
		require.Equal(t, tag, u.Country)
		require.Equal(t, tag, u.Team.Name)
		require.Len(t, u.Logs, 1)
	}
}

func TestStore_StartsEmpty(t *testing.T) {
	s := NewStore()

	snap := s.Acquire()
	defer snap.Release()

	require.NotNil(t, snap.Users())
	require.Zero(t, snap.Len())
	require.Equal(t, uint64(0), snap.Generation())
	require.Equal(t, int64(1), s.Live())
}

func TestStore_ReplaceReturnsPrevious(t *testing.T) {
	s := NewStore()

	require.Equal(t, uint64(0), s.Replace(taggedUsers("a", 2)))
	require.Equal(t, uint64(1), s.Replace(taggedUsers("b", 3)))
	require.Equal(t, uint64(2), s.Current())

	snap := s.Acquire()
	defer snap.Release()
	require.Equal(t, "b", snap.Users()[0].Country)
	require.Equal(t, 3, snap.Len())
}

func TestStore_ReplaceEmpty(t *testing.T) {
	s := NewStore()
	s.Replace(taggedUsers("a", 2))
	s.Replace([]entities.User{})

	snap := s.Acquire()
	defer snap.Release()
	require.Zero(t, snap.Len())
}

func TestStore_ReadIsolation(t *testing.T) {
	s := NewStore()
	s.Replace(taggedUsers("old", 4))

	snap := s.Acquire()
	s.Replace(taggedUsers("new", 2))

	requireTagged(t, snap.Users(), 4)
	require.Equal(t, "old", snap.Users()[0].Country)
	require.Equal(t, int64(2), s.Live(), "held generation must stay alive")

	snap.Release()
	require.Equal(t, int64(1), s.Live())
}

func TestStore_ReclaimsOnlyAfterLastReader(t *testing.T) {
	var reclaimed []uint64
	s := NewStore(WithReclaimHook(func(id uint64, _ int) { reclaimed = append(reclaimed, id) }))

	s.Replace(taggedUsers("a", 1))
	require.Equal(t, []uint64{0}, reclaimed)

	r1 := s.Acquire()
	r2 := s.Acquire()
	s.Replace(taggedUsers("b", 1))
	require.Equal(t, []uint64{0}, reclaimed)

	r1.Release()
	r1.Release()
	require.Equal(t, []uint64{0}, reclaimed, "double release must not drop another reader's reference")

	r2.Release()
	require.Equal(t, []uint64{0, 1}, reclaimed)
}

func TestStore_Close(t *testing.T) {
	var count atomic.Int32
	s := NewStore(WithReclaimHook(func(uint64, int) { count.Add(1) }))
	s.Replace(taggedUsers("a", 3))

	s.Close()

	snap := s.Acquire()
	defer snap.Release()
	require.Zero(t, snap.Len())
	require.Equal(t, int32(2), count.Load())
}

func TestStore_ConcurrentReplaceAtomicity(t *testing.T) {
	for i := 0; i < 50; i++ {
		s := NewStore()
		a, b := taggedUsers("A", 100), taggedUsers("B", 200)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); s.Replace(a) }()
		go func() { defer wg.Done(); s.Replace(b) }()
		wg.Wait()

		snap := s.Acquire()
		switch snap.Users()[0].Country {
		case "A":
			requireTagged(t, snap.Users(), 100)
		case "B":
			requireTagged(t, snap.Users(), 200)
		default:
			t.Fatalf("unexpected dataset %q", snap.Users()[0].Country)
		}
		snap.Release()
		require.Equal(t, int64(1), s.Live())
	}
}

func TestStore_InstallHookFollowsCurrentGeneration(t *testing.T) {
	type install struct {
		id    uint64
		users int
	}

	var installs []install
	s := NewStore(WithInstallHook(func(id uint64, users int) {
		installs = append(installs, install{id: id, users: users})
	}))

	var g errgroup.Group
	for w := 1; w <= 16; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < 20; i++ {
				s.Replace(taggedUsers(fmt.Sprintf("w%d", w), w))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Len(t, installs, 16*20)
	for i := 1; i < len(installs); i++ {
		require.Greater(t, installs[i].id, installs[i-1].id)
	}

	snap := s.Acquire()
	defer snap.Release()
	last := installs[len(installs)-1]
	require.Equal(t, snap.Generation(), last.id)
	require.Equal(t, snap.Len(), last.users)
}

func TestStore_ConcurrentReadersAndWriters(t *testing.T) {
	const (
		readers     = 8
		writers     = 4
		rounds      = 300
		usersPerGen = 16
	)

	var mu sync.Mutex
	reclaimCount := make(map[uint64]int)
	s := NewStore(WithReclaimHook(func(id uint64, _ int) {
		mu.Lock()
		reclaimCount[id]++
		mu.Unlock()
	}))

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < rounds; i++ {
				s.Replace(taggedUsers(fmt.Sprintf("w%d-%d", w, i), usersPerGen))
			}
			return nil
		})
	}
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			for i := 0; i < rounds; i++ {
				snap := s.Acquire()
				users := snap.Users()
				if snap.Generation() == 0 {
					if len(users) != 0 {
						snap.Release()
						return fmt.Errorf("generation 0 has %d users", len(users))
					}
					snap.Release()
					continue
				}
				if len(users) != usersPerGen {
					snap.Release()
					return fmt.Errorf("generation %d observed with %d users", snap.Generation(), len(users))
				}
				tag := users[0].Country
				for _, u := range users {
					if u.Country != tag || u.Team.Name != tag {
						snap.Release()
						return fmt.Errorf("torn generation %d: %q vs %q", snap.Generation(), tag, u.Country)
					}
				}
				snap.Release()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	s.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, reclaimCount, writers*rounds+1)
	for id, n := range reclaimCount {
		require.Equal(t, 1, n, "generation %d reclaimed %d times", id, n)
	}
	require.Equal(t, int64(1), s.Live())
}
