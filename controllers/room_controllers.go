package controllers

import (
	"errors"
	"strconv"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/middleware"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// manages reports whether userID is the manager of hotel
func manages(hotel *models.Hotel, userID uint) bool {
	return hotel != nil && hotel.ManagerID != nil && *hotel.ManagerID == userID
}

// GetAllRooms lists rooms, optionally filtered by ?hotel=<id> and paginated
// with ?page=&limit=. Without a limit the full list is returned. Public.
func GetAllRooms(c *gin.Context) {
	query := config.DB.Model(&models.Room{})
	if hotelID := c.Query("hotel"); hotelID != "" {
		query = query.Where("hotel_id = ?", hotelID)
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		var rooms []models.Room
		if err := query.Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, toRoomResponses(rooms))
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, toRoomResponses(rooms), page, limit, int(total))
}

// GetRoomDetail returns one room. Public.
func GetRoomDetail(c *gin.Context) {
	var room models.Room
	if err := config.DB.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toRoomResponse(room))
}

// CreateRoom adds a room to a hotel the caller manages. The hotel ID must be
// present in the body.
func CreateRoom(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.RoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Hotel == 0 {
		response.ValidationError(c, "Hotel ID must be provided.")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, input.Hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.ValidationError(c, "Invalid hotel ID.")
			return
		}
		response.ServerError(c)
		return
	}

	if !manages(&hotel, userID) {
		response.Forbidden(c, "You do not manage this hotel and cannot add rooms to it.")
		return
	}

	room := models.Room{
		HotelID:       hotel.ID,
		RoomType:      input.RoomType,
		PricePerNight: input.PricePerNight,
		Capacity:      input.Capacity,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelsCache(config.RedisClient)
	response.Created(c, toRoomResponse(room))
}

// loadRoomForWrite fetches the room with its hotel and enforces the manager
// rule. Writes on rooms of unmanaged hotels are forbidden for everyone.
func loadRoomForWrite(c *gin.Context, userID uint) (models.Room, bool) {
	var room models.Room
	if err := config.DB.Preload("Hotel").First(&room, "id = ?", c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return models.Room{}, false
	}

	if !manages(room.Hotel, userID) {
		response.Forbidden(c, "You do not manage this hotel and cannot modify its rooms.")
		return models.Room{}, false
	}

	return room, true
}

// UpdateRoom rewrites a room's fields. Moving a room to another hotel requires
// managing the target hotel as well.
func UpdateRoom(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	room, ok := loadRoomForWrite(c, userID)
	if !ok {
		return
	}

	var input dto.RoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Hotel != 0 && input.Hotel != room.HotelID {
		var target models.Hotel
		if err := config.DB.First(&target, input.Hotel).Error; err != nil {
			response.ValidationError(c, "Invalid hotel ID.")
			return
		}
		if !manages(&target, userID) {
			response.Forbidden(c, "You do not manage this hotel and cannot add rooms to it.")
			return
		}
		room.HotelID = target.ID
	}

	room.RoomType = input.RoomType
	if input.PricePerNight > 0 {
		room.PricePerNight = input.PricePerNight
	}
	if input.Capacity > 0 {
		room.Capacity = input.Capacity
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelsCache(config.RedisClient)
	response.Success(c, toRoomResponse(room))
}

// PatchRoom rewrites only the supplied fields of a room
func PatchRoom(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	room, ok := loadRoomForWrite(c, userID)
	if !ok {
		return
	}

	var input dto.RoomPatchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Hotel != nil && *input.Hotel != room.HotelID {
		var target models.Hotel
		if err := config.DB.First(&target, *input.Hotel).Error; err != nil {
			response.ValidationError(c, "Invalid hotel ID.")
			return
		}
		if !manages(&target, userID) {
			response.Forbidden(c, "You do not manage this hotel and cannot add rooms to it.")
			return
		}
		room.HotelID = target.ID
	}
	if input.RoomType != nil {
		room.RoomType = *input.RoomType
	}
	if input.PricePerNight != nil {
		room.PricePerNight = *input.PricePerNight
	}
	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelsCache(config.RedisClient)
	response.Success(c, toRoomResponse(room))
}

// DeleteRoom removes a room of a hotel the caller manages
func DeleteRoom(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	room, ok := loadRoomForWrite(c, userID)
	if !ok {
		return
	}

	if err := config.DB.Delete(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateHotelsCache(config.RedisClient)
	response.Success(c, nil)
}
