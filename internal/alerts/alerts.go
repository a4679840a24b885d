// Package alerts emails low-stock notifications and a daily summary.
// Events are buffered in a redis list so the summary survives restarts.
package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/storefront-api/internal/config"
	"github.com/rogerio-castellano/storefront-api/internal/models"
	"github.com/rogerio-castellano/storefront-api/internal/redissvc"
	"github.com/rogerio-castellano/storefront-api/internal/repo"
)

var (
	alertFrom         string
	alertTo           string
	smtpServer        string
	smtpPort          string
	smtpUser          string
	smtpPassword      string
	smtpAuthDisabled  bool
	lowStockThreshold int

	rdb *redis.Client
	ctx context.Context

	productRepo repo.ProductRepository
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

// SetProductRepo provides the repository the daily summary queries for
// products that are still below the threshold when the mail goes out.
func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func Configure(cfg config.Config) {
	alertFrom = cfg.AlertFrom
	alertTo = cfg.AlertTo
	smtpServer = cfg.SMTPServer
	smtpPort = cfg.SMTPPort
	smtpUser = cfg.SMTPUser
	smtpPassword = cfg.SMTPPassword
	smtpAuthDisabled = cfg.SMTPAuthDisabled
	lowStockThreshold = cfg.LowStockThreshold
}

type LowStockEntry struct {
	ProductID int       `json:"product_id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	Time      time.Time `json:"time"`
}

// SendLowStockAlert mails an immediate notification for a product whose
// stock dropped below the configured threshold and logs the event for
// the daily summary.
func SendLowStockAlert(p models.Product) error {
	subject := fmt.Sprintf("LOW STOCK: %s down to %d", p.Name, p.StockQuantity)
	body := fmt.Sprintf("Product: %s (id %d)\nCategory: %s\nStock: %d\nTime: %s",
		p.Name, p.ID, p.Category, p.StockQuantity, time.Now().Format(time.RFC3339))

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", alertFrom, alertTo, subject, body)

	if smtpServer != "" {
		go func() {
			if err := sendMail([]byte(msg)); err != nil {
				log.Printf("Failed to send low-stock alert email: %v", err)
			}
		}()
	}

	logLowStockEvent(p)
	return nil
}

func logLowStockEvent(p models.Product) {
	if rdb == nil {
		return
	}
	entry := LowStockEntry{
		ProductID: p.ID,
		Name:      p.Name,
		Stock:     p.StockQuantity,
		Time:      time.Now(),
	}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, redissvc.KeyLowStockLog, data).Err()
}

// StartDailyLowStockSummary fires the summary mail once a day just
// before midnight.
func StartDailyLowStockSummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailyLowStockSummary()
	}
}

func SendDailyLowStockSummary() {
	if rdb == nil {
		return
	}
	entries, err := rdb.LRange(ctx, redissvc.KeyLowStockLog, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, redissvc.KeyLowStockLog).Err() // clear after reading

	var logs []LowStockEntry
	for _, item := range entries {
		var entry LowStockEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			logs = append(logs, entry)
		}
	}

	msg := strings.Join([]string{
		"From: " + alertFrom,
		"To: " + alertTo,
		"Subject: Daily Low-Stock Report",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		summaryBody(logs),
	}, "\r\n")

	go func() {
		if err := sendMail([]byte(msg)); err != nil {
			log.Printf("Failed to send daily low-stock summary: %v", err)
		} else {
			log.Println("Daily low-stock summary sent via SMTP.")
		}
	}()
}

// summaryBody renders the day's event log plus the products that are
// still below the threshold at send time.
func summaryBody(logs []LowStockEntry) string {
	productCounts := make(map[string]int)
	for _, entry := range logs {
		productCounts[entry.Name]++
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Low-Stock Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total events: <strong>%d</strong></p>", len(logs)))

	sb.WriteString("<h3>By Product</h3><ul>")
	for name, count := range productCounts {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code>: %d</li>", name, count))
	}
	sb.WriteString("</ul>")

	if productRepo != nil {
		if current, err := productRepo.LowStock(lowStockThreshold); err == nil && len(current) > 0 {
			sb.WriteString("<h3>Still Below Threshold</h3><ul>")
			for _, p := range current {
				sb.WriteString(fmt.Sprintf("<li><b>%s</b>: %d in stock</li>", p.Name, p.StockQuantity))
			}
			sb.WriteString("</ul>")
		}
	}

	sb.WriteString("<h3>Full Log</h3><ul>")
	for _, entry := range logs {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b> at stock %d on %s</li>",
			entry.Name, entry.Stock, entry.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")
	return sb.String()
}

func sendMail(msg []byte) error {
	addr := fmt.Sprintf("%s:%s", smtpServer, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPassword, smtpServer)
	if smtpAuthDisabled {
		auth = nil
	}
	return smtp.SendMail(addr, auth, alertFrom, []string{alertTo}, msg)
}
