package variables

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultArraySize is the number of elements of an array created on first
// reference.
const DefaultArraySize = 10

var (
	// ErrInvalidArrayIndex flags an array index which is negative or has
	// a fractional part.
	ErrInvalidArrayIndex = errors.New("invalid array index")
	// ErrArrayIndexOutOfBounds flags an array index beyond the end of the
	// array. It is wrapped by IndexOutOfBoundsError.
	ErrArrayIndexOutOfBounds = errors.New("array index out of bounds")
)

// IndexOutOfBoundsError reports an access beyond the end of an array.
type IndexOutOfBoundsError struct {
	Name  string
	Index float64
	Size  int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %s(%g), array has %d elements", ErrArrayIndexOutOfBounds.Error(),
		e.Name, e.Index, e.Size)
}

func (e *IndexOutOfBoundsError) Unwrap() error {
	return ErrArrayIndexOutOfBounds
}

// --- Store -----------------------------------------------------------------

// Store holds the scalar and array variables of a program.
type Store struct {
	scalars   map[string]float64
	arrays    map[string][]float64
	arraySize int
}

// Option configures a store.
type Option func(*Store)

// WithArraySize sets the number of elements of arrays created on first
// reference. Values < 1 are ignored.
func WithArraySize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.arraySize = n
		}
	}
}

// NewStore creates an empty variable store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		scalars:   make(map[string]float64),
		arrays:    make(map[string][]float64),
		arraySize: DefaultArraySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ArraySize returns the size of arrays created on first reference.
func (s *Store) ArraySize() int {
	return s.arraySize
}

// Scalar returns the value of a scalar variable. Unset variables are 0.
func (s *Store) Scalar(name string) float64 {
	return s.scalars[name]
}

// SetScalar sets a scalar variable, creating it if necessary.
func (s *Store) SetScalar(name string, value float64) {
	tracer().P("var", name).Debugf("%s = %g", name, value)
	s.scalars[name] = value
}

// Dim creates an array with a given number of elements. If an array of that
// name already exists, Dim returns it unchanged and reports false.
func (s *Store) Dim(name string, size int) ([]float64, bool) {
	if a, ok := s.arrays[name]; ok {
		return a, false
	}
	tracer().P("var", name).Debugf("creating array %s(%d)", name, size)
	a := make([]float64, size)
	s.arrays[name] = a
	return a, true
}

// ElementOrCreate reads an element of an array. If the array does not exist
// yet, it is created with the store's default size before access.
func (s *Store) ElementOrCreate(name string, index float64) (float64, error) {
	a, _ := s.Dim(name, s.arraySize)
	i, err := checkIndex(name, index, len(a))
	if err != nil {
		return 0, err
	}
	return a[i], nil
}

// SetElementOrCreate sets an element of an array. If the array does not
// exist yet, it is created with the store's default size before access.
func (s *Store) SetElementOrCreate(name string, index float64, value float64) error {
	a, _ := s.Dim(name, s.arraySize)
	i, err := checkIndex(name, index, len(a))
	if err != nil {
		return err
	}
	tracer().P("var", name).Debugf("%s(%d) = %g", name, i, value)
	a[i] = value
	return nil
}

// checkIndex validates an index before it is truncated to an int.
func checkIndex(name string, index float64, size int) (int, error) {
	if math.IsNaN(index) || index < 0 || index != math.Trunc(index) {
		return 0, fmt.Errorf("%w: %s(%g)", ErrInvalidArrayIndex, name, index)
	}
	if index >= float64(size) {
		return 0, &IndexOutOfBoundsError{Name: name, Index: index, Size: size}
	}
	return int(index), nil
}

// Array returns a copy of an array variable, if it exists.
func (s *Store) Array(name string) ([]float64, bool) {
	a, ok := s.arrays[name]
	if !ok {
		return nil, false
	}
	c := make([]float64, len(a))
	copy(c, a)
	return c, true
}

// ScalarNames returns the names of all scalar variables, sorted.
func (s *Store) ScalarNames() []string {
	names := make([]string, 0, len(s.scalars))
	for name := range s.scalars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ArrayNames returns the names of all array variables, sorted.
func (s *Store) ArrayNames() []string {
	names := make([]string, 0, len(s.arrays))
	for name := range s.arrays {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot is a copy of the contents of a store, suitable for serialization.
type Snapshot struct {
	Scalars map[string]float64   `yaml:"scalars,omitempty"`
	Arrays  map[string][]float64 `yaml:"arrays,omitempty"`
}

// Snapshot copies the current contents of the store.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Scalars: make(map[string]float64, len(s.scalars)),
		Arrays:  make(map[string][]float64, len(s.arrays)),
	}
	for name, v := range s.scalars {
		snap.Scalars[name] = v
	}
	for name := range s.arrays {
		snap.Arrays[name], _ = s.Array(name)
	}
	return snap
}
