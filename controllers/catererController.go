package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"go-catering-management/database"
	"go-catering-management/helpers"
	"go-catering-management/models"
	"go-catering-management/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

var catererCollection *mongo.Collection = database.OpenCollection(database.Client, "caterer")
var validate = validator.New()

func SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var caterer models.Caterer

		if err := c.BindJSON(&caterer); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		validationErr := validate.Struct(&caterer)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
			return
		}

		count, err := catererCollection.CountDocuments(ctx, bson.M{"email": caterer.Email})
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while checking for the email"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "a caterer with this email already exists"})
			return
		}

		password := HashPassword(*caterer.Password)
		caterer.Password = &password

		caterer.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		caterer.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		caterer.ID = primitive.NewObjectID()
		caterer.Caterer_id = caterer.ID.Hex()
		caterer.Is_active = true
		if caterer.Max_daily_bookings == 0 {
			caterer.Max_daily_bookings = services.DefaultMaxDailyBookings
		}

		token, refreshToken, _ := helpers.GenerateAllTokens(caterer.Caterer_id, *caterer.Business_name)
		caterer.Token = &token
		caterer.Refresh_token = &refreshToken

		_, insertErr := catererCollection.InsertOne(ctx, caterer)
		defer cancel()
		if insertErr != nil {
			msg := fmt.Sprintf("caterer was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"caterer_id":    caterer.Caterer_id,
			"business_name": caterer.Business_name,
			"email":         caterer.Email,
			"token":         token,
		}})
	}
}

func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var caterer models.Caterer
		var foundCaterer models.Caterer

		if err := c.BindJSON(&caterer); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		err := catererCollection.FindOne(ctx, bson.M{"email": caterer.Email}).Decode(&foundCaterer)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "email or password is incorrect"})
			return
		}

		passwordIsValid, msg := VerifyPassword(*caterer.Password, *foundCaterer.Password)
		if !passwordIsValid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": msg})
			return
		}
		if !foundCaterer.Is_active {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "this account has been deactivated"})
			return
		}

		token, refreshToken, _ := helpers.GenerateAllTokens(foundCaterer.Caterer_id, *foundCaterer.Business_name)
		helpers.UpdateAllTokens(token, refreshToken, foundCaterer.Caterer_id)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"caterer_id":    foundCaterer.Caterer_id,
			"business_name": foundCaterer.Business_name,
			"email":         foundCaterer.Email,
			"token":         token,
			"refresh_token": refreshToken,
		}})
	}
}

func GetCaterers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		projection := bson.D{
			{Key: "password", Value: 0},
			{Key: "token", Value: 0},
			{Key: "refresh_token", Value: 0},
		}
		result, err := catererCollection.Find(ctx, bson.M{"is_active": true}, options.Find().SetProjection(projection))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing caterers"})
			return
		}
		var allCaterers []bson.M
		if err := result.All(ctx, &allCaterers); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing caterers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": allCaterers})
	}
}

func GetCaterer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		catererId := c.Param("caterer_id")
		var caterer bson.M

		projection := bson.D{
			{Key: "password", Value: 0},
			{Key: "token", Value: 0},
			{Key: "refresh_token", Value: 0},
		}
		err := catererCollection.FindOne(ctx, bson.M{"caterer_id": catererId}, options.FindOne().SetProjection(projection)).Decode(&caterer)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "caterer not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": caterer})
	}
}

func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		catererId := c.GetString("caterer_id")
		var caterer bson.M

		projection := bson.D{
			{Key: "password", Value: 0},
			{Key: "token", Value: 0},
			{Key: "refresh_token", Value: 0},
		}
		err := catererCollection.FindOne(ctx, bson.M{"caterer_id": catererId}, options.FindOne().SetProjection(projection)).Decode(&caterer)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "caterer not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": caterer})
	}
}

func UpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		catererId := c.GetString("caterer_id")
		var caterer models.Caterer

		if err := c.BindJSON(&caterer); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var updateObj primitive.D
		if caterer.Business_name != nil {
			updateObj = append(updateObj, bson.E{Key: "business_name", Value: caterer.Business_name})
		}
		if caterer.Owner_name != nil {
			updateObj = append(updateObj, bson.E{Key: "owner_name", Value: caterer.Owner_name})
		}
		if caterer.Phone != nil {
			updateObj = append(updateObj, bson.E{Key: "phone", Value: caterer.Phone})
		}
		if caterer.Address != nil {
			updateObj = append(updateObj, bson.E{Key: "address", Value: caterer.Address})
		}
		if caterer.Description != nil {
			updateObj = append(updateObj, bson.E{Key: "description", Value: caterer.Description})
		}
		if caterer.Misc_cost != 0 {
			updateObj = append(updateObj, bson.E{Key: "misc_cost", Value: caterer.Misc_cost})
		}
		if caterer.Dynamic_pricing != nil {
			for _, tier := range caterer.Dynamic_pricing {
				if validationErr := validate.Struct(&tier); validationErr != nil {
					c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
					return
				}
			}
			updateObj = append(updateObj, bson.E{Key: "dynamic_pricing", Value: caterer.Dynamic_pricing})
		}
		if caterer.Max_daily_bookings != 0 {
			updateObj = append(updateObj, bson.E{Key: "max_daily_bookings", Value: caterer.Max_daily_bookings})
		}
		updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: updated_at})

		filter := bson.M{"caterer_id": catererId}
		result, err := catererCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
		)
		defer cancel()
		if err != nil {
			msg := fmt.Sprintf("caterer profile update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "caterer not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
	}
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword))
	check := true
	msg := ""
	if err != nil {
		msg = fmt.Sprintf("email or password is incorrect")
		check = false
	}
	return check, msg
}
