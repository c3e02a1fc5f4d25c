package mail

import "fmt"

// Plain-text email bodies sent by the booking flow.

func VerificationBody(name, code string) string {
	return fmt.Sprintf(
		"Merhaba %s,\n\nRandevu sistemimizi kullanmaya başladığınız için teşekkür ederiz. Doğrulama kodunuz: %s\n\nBu kodu 10 dakika içinde kullanmayı unutmayın. Sorularınız için yanıtla butonunu kullanabilirsiniz.\n\nSevgilerimizle,\nRandevux Ekibi",
		name, code,
	)
}

func ConfirmationBody(name, service, doctor, date, timeStr string) string {
	return fmt.Sprintf(
		"Merhaba %s,\n\n%s tarihinde %s saatindeki randevunuz başarıyla oluşturuldu.\n\nHizmet: %s\nDoktor: %s\n\nRandevu detaylarını takvimine eklemek için ekteki ICS dosyasını kullanabilirsin.\n\nSevgilerimizle,\nRandevux Ekibi",
		name, date, timeStr, service, doctor,
	)
}

func ReminderBody(name, date, timeStr, service, doctor string) string {
	return fmt.Sprintf(
		"Merhaba %s,\n\nYarın (%s) %s saatindeki %s randevunuzu hatırlatmak isteriz.\nDoktor: %s\n\nHerhangi bir değişiklik yapmanız gerekiyorsa lütfen bizimle iletişime geçin.\n\nSevgilerimizle,\nRandevux Ekibi",
		name, date, timeStr, service, doctor,
	)
}
