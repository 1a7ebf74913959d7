package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"parqueaventura/config"
)

// SendEmail delivers an HTML mail through the configured SMTP account.
// When no sender is configured the mail is skipped, which keeps local and
// test runs quiet.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" {
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Parque Aventura <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B5E20; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B5E20; line-height: 1.6; }
			.content h2 { color: #1B5E20; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>PARQUE AVENTURA</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Parque Aventura.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a newly registered user.
func SendWelcomeEmail(email, name string) {
	subject := "Bienvenido a Parque Aventura"
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tu cuenta en <strong>Parque Aventura</strong> fue creada correctamente.</p>
		<p>Ya puedes iniciar sesión y registrar tus visitas a parques de diversiones.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("¡Bienvenido!", body))
}

// SendLikeNotificationEmail tells a visit owner that someone liked their
// visit.
func SendLikeNotificationEmail(email, ownerName, likerName, park string) {
	subject := `Nuevo "Me gusta" en tu visita`
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p><strong>%s</strong> ha dado "Me gusta" a tu visita al parque <strong>%s</strong>.</p>
		<p>Entra a tu dashboard para ver tus visitas.</p>
	`, ownerName, likerName, park)

	go SendEmail([]string{email}, subject, getEmailTemplate(`Nuevo "Me gusta"`, body))
}
