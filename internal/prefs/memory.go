package prefs

// MemStore is an in-memory Store used in tests and when the database is
// unavailable.
type MemStore map[string]string

func (m MemStore) GetSetting(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m MemStore) SetSetting(key, value string) error {
	m[key] = value
	return nil
}
