package service

import (
	"magangku_backend/internals/features/registrations/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap Midtrans untuk biaya pendaftaran.
func GenerateSnapToken(r model.RegistrationModel, fee int64) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  r.RegistrationOrderID,
			GrossAmt: fee,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: r.RegistrationFullName,
			Email: r.RegistrationEmail,
			Phone: r.RegistrationPhone,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
