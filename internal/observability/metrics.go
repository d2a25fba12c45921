package observability

type Metrics interface {
	ObservePlace(dbMs, cacheMs float64)
	ObserveDelete(dbMs float64)
	ObserveSync(added int, durMs float64)
	ObserveLookup(durMs float64, hit bool)
	ObserveReport(kind string, durMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveConsume(processMs float64, ok bool)
	IncCacheWriteFailure()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObservePlace(float64, float64)            {}
func (Noop) ObserveDelete(float64)                    {}
func (Noop) ObserveSync(int, float64)                 {}
func (Noop) ObserveLookup(float64, bool)              {}
func (Noop) ObserveReport(string, float64)            {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveConsume(float64, bool)             {}
func (Noop) IncCacheWriteFailure()                    {}
