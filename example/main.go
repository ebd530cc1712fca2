package main

import (
	"fmt"
	"strings"

	"github.com/fernandezvara/passadvisor"
)

func main() {
	fmt.Println("Password Strength Examples")
	fmt.Println("==========================")
	fmt.Println()

	// Example 1: Basic usage with the embedded lists
	fmt.Println("1. Basic Usage (Embedded Lists)")
	fmt.Println("-------------------------------")
	res := passadvisor.Analyze("password", nil)
	fmt.Printf("Password: `password`\n")
	fmt.Printf("Result: Level=%s, Score=%d, Breach=%v\n", res.Level, res.Score, res.BreachDetected)
	fmt.Printf("Suggestions: %s\n", strings.Join(res.Suggestions, "; "))
	fmt.Println()

	// Example 2: Personal information
	fmt.Println("2. Personal Information")
	fmt.Println("-----------------------")
	info := &passadvisor.ContextInfo{Name: "Alice", BirthYear: "1990"}
	for _, pwd := range []string{"mybirthyear1990x", "Alice#Rules77q"} {
		plain := passadvisor.Analyze(pwd, nil)
		withCtx := passadvisor.Analyze(pwd, info)
		fmt.Printf("Password: `%s`  without context: %d (%s)  with context: %d (%s)\n",
			pwd, plain.Score, plain.Level, withCtx.Score, withCtx.Level)
	}
	fmt.Println()

	// Example 3: Custom known-weak list
	fmt.Println("3. Custom Dictionary Usage")
	fmt.Println("--------------------------")
	customDict := `CompanyName2024!
Welcome@Acme
acme-admin`

	a := passadvisor.NewAnalyzerWithDict(customDict)
	res = a.Analyze("companyname2024!", nil)
	fmt.Printf("Password: `companyname2024!`\n")
	fmt.Printf("Result: Level=%s, Score=%d, Breach=%v\n", res.Level, res.Score, res.BreachDetected)
	fmt.Println()

	// Example 4: Generate and analyze
	fmt.Println("4. Generated Password")
	fmt.Println("---------------------")
	pwd, err := passadvisor.Generate()
	if err != nil {
		fmt.Printf("Generate failed: %v\n", err)
	} else {
		res = passadvisor.Analyze(pwd, nil)
		fmt.Printf("Password: `%s`\n", pwd)
		fmt.Printf("Result: Level=%s, Score=%d, Crack time=%s\n", res.Level, res.Score, res.CrackTime)
	}
	fmt.Println()

	// Example 5: Comprehensive table
	fmt.Println("5. Comprehensive Analysis Table")
	fmt.Println("===============================")
	fmt.Println()

	fmt.Println("| Password                     | Score | Level       | Crack time                  | Why")
	fmt.Println("|------------------------------|-------|-------------|-----------------------------|----")

	testCases := []string{
		"password",
		"p@ssw0rd",
		"qwerty",
		"aaaaaa",
		"Xk9$mP2!vLq",
		"12345678",
		"abcdefg",
		"P@ssword123",
		"admin2023!",
		"letmein!!",
		"Abc123!",
		"MyDogName1",
		"Summer2024$",
		"!@#$%^&*",
		"aB3!aB3!",
		"correcthorsebatterystaple",
		"Tr0ub4dor&3Xy!",
		"p@ssw0rd123",
		"keyboardcat",
		"11111111",
		"password123",
	}

	for _, pwd := range testCases {
		res := passadvisor.Analyze(pwd, nil)
		fmt.Printf("| %-28s | %-5d | %-11s | %-27s | %s\n",
			"`"+pwd+"`", res.Score, res.Level, res.CrackTime, why(res))
	}
}

// why summarizes the penalties behind a result.
func why(res passadvisor.Result) string {
	if len(res.Penalties) == 0 {
		return "No penalties"
	}
	var parts []string
	for _, p := range res.Penalties {
		switch p.Rule {
		case passadvisor.RuleBreach:
			parts = append(parts, "Known leaked password")
		case passadvisor.RuleRepeatedChars:
			parts = append(parts, "Repeated chars")
		case passadvisor.RuleSequentialPattern:
			parts = append(parts, "Sequential pattern")
		case passadvisor.RuleCommonWord:
			parts = append(parts, "Common word")
		case passadvisor.RulePersonalInfo:
			parts = append(parts, "Personal info")
		default:
			parts = append(parts, p.Rule)
		}
	}
	return strings.Join(parts, " + ")
}
