package config

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

func GetFiberListenAddress() string {
	return fmt.Sprintf("%s:%s", GetFiberHttpHost(), GetFiberHttpPort())
}

func GetFiberConfig() fiber.Config {
	return fiber.Config{
		DisableStartupMessage: false,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Prefork:               false,
		ServerHeader:          GetAppName(),
		AppName:               GetAppName(),
		ReadTimeout:           time.Second * 60,
		CaseSensitive:         true,
	}
}

func GetAppName() string {
	v := os.Getenv("APP_NAME")
	if v == "" {
		return "HOSPITAL-RECORDS"
	}

	return v
}

func GetFiberHttpHost() string {
	env := os.Getenv("HTTP_HOST")
	if env != "" {
		return env
	}
	return "0.0.0.0"
}

func GetFiberHttpPort() string {
	env := os.Getenv("HTTP_PORT")
	if env != "" {
		return env
	}
	return "3000"
}

// GetPatientAuditLogPath is the append-only patient action log destination.
func GetPatientAuditLogPath() string {
	env := os.Getenv("PATIENT_AUDIT_LOG")
	if env != "" {
		return env
	}
	return "logs/patient-actions.log"
}

// GetRoomAuditLogPath is the append-only room action log destination.
func GetRoomAuditLogPath() string {
	env := os.Getenv("ROOM_AUDIT_LOG")
	if env != "" {
		return env
	}
	return "logs/room-actions.log"
}
