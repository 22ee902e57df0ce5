package service

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// salidasCacheKey guarda el listado de productos vendibles. Toda
// mutación de stock lo invalida.
const salidasCacheKey = "salidas:productos"

// invalidarSalidasCache borra la entrada cacheada. Best effort: un
// redis caído nunca debe fallar una escritura ya confirmada.
func invalidarSalidasCache(rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = rdb.Del(context.Background(), salidasCacheKey).Err()
}
