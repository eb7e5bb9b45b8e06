package handlers

import (
	"net/http"

	"vpp-dispatch/internal/api/models"
	"vpp-dispatch/internal/model"

	"github.com/gin-gonic/gin"
)

// ListIndustries handles GET /api/v1/industries
func ListIndustries(c *gin.Context) {
	industries := model.Industries()
	infos := make([]models.IndustryInfo, 0, len(industries))
	for _, ind := range industries {
		profile, err := model.ProfileFor(ind)
		if err != nil {
			continue
		}
		infos = append(infos, models.IndustryInfo{
			ID:         string(ind),
			BaseLoadKW: profile.BaseLoadKW,
			PeakRatio:  profile.PeakRatio,
			Shape:      string(profile.Shape),
		})
	}
	c.JSON(http.StatusOK, models.IndustriesResponse{Industries: infos})
}
