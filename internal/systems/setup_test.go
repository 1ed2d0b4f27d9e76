package systems

import (
	"os"
	"testing"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/internal/domain"
	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// fixedRandom отдает заранее заданные значения по кругу
type fixedRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *fixedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *fixedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	if v >= n {
		return n - 1
	}
	return v
}

// createTestGrid строит карту из строк: . база, # стена, ~ вода, * лед, D закрытая дверь, O открытая
func createTestGrid(t *testing.T, rows ...string) *domain.Grid {
	t.Helper()
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, len(row))
		for x, c := range row {
			var kind domain.TileKind
			switch c {
			case '.':
				kind = domain.TileBase
			case '#':
				kind = domain.TileWall
			case '~':
				kind = domain.TileWater
			case '*':
				kind = domain.TileIce
			case 'D':
				kind = domain.TileDoorClosed
			case 'O':
				kind = domain.TileDoorOpen
			default:
				t.Fatalf("unknown tile %q", c)
			}
			values[y][x] = domain.EncodeTile(kind, domain.ItemNone)
		}
	}
	g, err := domain.NewGrid(values)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func occupiedBy(positions ...domain.Position) Blocked {
	return func(p domain.Position) bool {
		for _, o := range positions {
			if o == p {
				return true
			}
		}
		return false
	}
}
