package service

type PlaceStats struct {
	DBWriteMs    float64
	CacheWriteMs float64
	CacheOK      bool
}

type LookupStats struct {
	CacheMs float64
	Hit     bool
}
