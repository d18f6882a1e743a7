package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"go-catering-management/database"
	"go-catering-management/helpers"
	"go-catering-management/models"
	"go-catering-management/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var otpCollection *mongo.Collection = database.OpenCollection(database.Client, "passwordResetOTP")

type sendOTPRequest struct {
	Email string `json:"email" validate:"email,required"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"email,required"`
	Code  string `json:"code" validate:"required"`
}

type resetPasswordRequest struct {
	Email            string `json:"email" validate:"email,required"`
	Code             string `json:"code" validate:"required"`
	New_password     string `json:"new_password" validate:"required"`
	Confirm_password string `json:"confirm_password" validate:"required"`
}

// SendOTP issues a one-time reset code, rate-limited to 3 per hour per email.
func SendOTP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var req sendOTPRequest

		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
			return
		}

		var caterer models.Caterer
		if err := catererCollection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&caterer); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "no account found for this email"})
			return
		}

		windowStart := time.Now().Add(-services.OTPRateLimitWindow)
		recentCount, err := otpCollection.CountDocuments(ctx, bson.M{
			"email":      req.Email,
			"created_at": bson.M{"$gte": windowStart},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while checking recent requests"})
			return
		}
		if services.IsOTPRateLimited(recentCount) {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "too many reset requests, try again later"})
			return
		}

		code, err := services.GenerateOTPCode()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while generating the code"})
			return
		}

		now := time.Now()
		otp := models.PasswordResetOTP{
			ID:         primitive.NewObjectID(),
			Email:      req.Email,
			Code:       code,
			Expires_at: now.Add(services.OTPValidity),
			Is_used:    false,
			Created_at: now,
		}
		if _, err := otpCollection.InsertOne(ctx, otp); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while saving the code"})
			return
		}

		emailConfig, err := helpers.LoadEmailConfig()
		if err != nil {
			log.Println("email config:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to send the reset code"})
			return
		}
		text := "Your password reset code is " + code + ". It expires in 2 minutes."
		if err := emailConfig.Send(req.Email, "Password Reset Code", text); err != nil {
			log.Println("otp delivery failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to send the reset code"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "reset code sent"})
	}
}

// VerifyOTP checks an unused email+code pair and marks it used. An expired
// code purges every record for the email.
func VerifyOTP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var req verifyOTPRequest

		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
			return
		}

		var otp models.PasswordResetOTP
		err := otpCollection.FindOne(ctx, bson.M{
			"email":   req.Email,
			"code":    req.Code,
			"is_used": false,
		}).Decode(&otp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid code"})
			return
		}

		if services.IsOTPExpired(otp, time.Now()) {
			if _, err := otpCollection.DeleteMany(ctx, bson.M{"email": req.Email}); err != nil {
				log.Println("otp purge failed:", err)
			}
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "code has expired, request a new one"})
			return
		}

		_, err = otpCollection.UpdateOne(
			ctx,
			bson.M{"_id": otp.ID},
			bson.D{{Key: "$set", Value: bson.D{{Key: "is_used", Value: true}}}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while verifying the code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "code verified"})
	}
}

// ResetPassword consumes a verified (used, unexpired) code and stores the new
// credential, then purges every code for the email.
func ResetPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var req resetPasswordRequest

		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
			return
		}
		if req.New_password != req.Confirm_password {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "passwords do not match"})
			return
		}
		if len(req.New_password) < services.MinPasswordLength {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "password must be at least 8 characters"})
			return
		}

		var otp models.PasswordResetOTP
		err := otpCollection.FindOne(ctx, bson.M{
			"email":   req.Email,
			"code":    req.Code,
			"is_used": true,
		}).Decode(&otp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "code has not been verified"})
			return
		}
		if services.IsOTPExpired(otp, time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "code has expired, request a new one"})
			return
		}

		password := HashPassword(req.New_password)
		updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		_, err = catererCollection.UpdateOne(
			ctx,
			bson.M{"email": req.Email},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "password", Value: password},
				{Key: "updated_at", Value: updated_at},
			}}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "password update failed"})
			return
		}

		if _, err := otpCollection.DeleteMany(ctx, bson.M{"email": req.Email}); err != nil {
			log.Println("otp purge failed:", err)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "password has been reset"})
	}
}
