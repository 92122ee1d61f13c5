package teller

import "banksim/internal/storage"

// Transcript 將目前的紀錄與帳戶摘要整理為可匯出的結構。
func (s *Session) Transcript(note string) storage.Transcript {
	acct := s.Ledger.Account()
	return storage.Transcript{
		Meta:    storage.Meta{Currency: s.Ledger.Currency(), Note: note},
		Holder:  acct.Holder,
		Balance: acct.Balance.StringFixed(2),
		Lines:   s.Journal.Lines(),
	}
}
