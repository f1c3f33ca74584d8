package calc

import (
	"fmt"
	"reflect"
	"strings"
)

// FilterBySearch - kayıtların alan değerlerinin string gösteriminde
// büyük/küçük harf duyarsız arama yapar. Boş veya sadece boşluktan oluşan
// sorgu girdiyi olduğu gibi döndürür. Girdi sırası korunur.
func FilterBySearch[T any](query string, items []T) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if matchesQuery(item, q) {
			matched = append(matched, item)
		}
	}
	return matched
}

// matchesQuery - kaydın üst seviye alanlarını tek tek string'e çevirip arar.
// Pointer alanlar değerlerine çözülür; nil pointer katkı yapmaz.
func matchesQuery(item any, q string) bool {
	v := reflect.ValueOf(item)
	if v.Kind() != reflect.Struct {
		return strings.Contains(strings.ToLower(fmt.Sprint(item)), q)
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanInterface() {
			continue
		}
		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(field.Interface())), q) {
			return true
		}
	}
	return false
}
