package domain

import "github.com/yungbote/companyinfo-backend/internal/domain/directory"

type Company = directory.Company
type Country = directory.Country
type Contact = directory.Contact
type CompanyContactCount = directory.CompanyContactCount
type SeedHistory = directory.SeedHistory
type SeedSummary = directory.SeedSummary
