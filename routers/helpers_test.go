package routers

import "Frontend/models"

func storageConfig(product, auth, order string) models.APIConfig {
	return models.APIConfig{Product: product, Auth: auth, Order: order}
}
